package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the CMS provider-data datastore query endpoint.
const DefaultBaseURL = "https://data.cms.gov/provider-data/api/1/datastore/query"

// Config holds all runtime configuration for a cmscollect run.
type Config struct {
	DSN         string
	LogFormat   string // "text" or "json"
	LogLevel    string
	BaseURL     string
	Region      string        // coarse state filter sent to the API
	RecordLimit int           // record cap per request
	Timeout     time.Duration // per-request timeout
	Pause       time.Duration // wait between years
	Years       []int
	TargetsFile string
	OutPath     string
	FilePath    string
	Targets     Targets
}

// Targets are the allow-lists that decide which records are collected, and
// the dataset identifier of each reporting year.
type Targets struct {
	ZipCodes    []string       `yaml:"zip_codes"`
	Cities      []string       `yaml:"cities"`
	Specialties []string       `yaml:"specialties"`
	Datasets    map[int]string `yaml:"datasets"`
}

// Default returns the configuration used when no flags or files override it.
func Default() Config {
	return Config{
		LogFormat:   "text",
		LogLevel:    "info",
		BaseURL:     DefaultBaseURL,
		Region:      "GA",
		RecordLimit: 2000,
		Timeout:     30 * time.Second,
		Pause:       2 * time.Second,
		Years:       DefaultYears(),
		Targets:     DefaultTargets(),
	}
}

// DefaultYears lists the five most recent reporting years, newest first.
func DefaultYears() []int {
	return []int{2022, 2021, 2020, 2019, 2018}
}

// DefaultTargets returns the Atlanta-metro orthopedic targets.
func DefaultTargets() Targets {
	datasets := make(map[int]string)
	for _, y := range DefaultYears() {
		datasets[y] = fmt.Sprintf("medicare-physician-other-practitioners-by-provider-and-service-%d", y)
	}
	return Targets{
		ZipCodes: []string{
			"30305", "30306", "30307", "30308", "30309", "30310", "30311", "30312",
			"30313", "30314", "30315", "30316", "30317", "30318", "30319", "30324",
			"30325", "30326", "30327", "30328", "30329", "30331", "30332", "30334",
			"30336", "30337", "30338", "30339", "30340", "30341", "30342", "30344",
			"30345", "30346", "30347", "30348", "30349", "30350", "30354", "30360",
			"30361", "30363", "30364", "30366", "30368", "30369", "30370", "30371",
			"30374", "30375", "30376", "30377", "30378", "30380", "30384", "30385",
			"30388", "30392", "30394", "30396", "30398",
		},
		Cities: []string{
			"Atlanta",
			"Decatur",
			"Marietta",
			"Roswell",
			"Alpharetta",
		},
		Specialties: []string{
			"Orthopedic Surgery",
			"Orthopaedic Surgery",
			"Hand Surgery",
			"Sports Medicine",
			"Interventional Pain Management",
		},
		Datasets: datasets,
	}
}

// LoadFromFile reads a YAML targets file and merges its values into Config.
// Lists present in the file replace the defaults; datasets are merged by year.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var t Targets
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(t.ZipCodes) > 0 {
		c.Targets.ZipCodes = t.ZipCodes
	}
	if len(t.Cities) > 0 {
		c.Targets.Cities = t.Cities
	}
	if len(t.Specialties) > 0 {
		c.Targets.Specialties = t.Specialties
	}
	if c.Targets.Datasets == nil {
		c.Targets.Datasets = make(map[int]string)
	}
	for year, id := range t.Datasets {
		c.Targets.Datasets[year] = id
	}
	return c.Targets.Validate()
}

// Validate checks that the targets can accept at least one record.
func (t *Targets) Validate() error {
	if len(t.Specialties) == 0 {
		return fmt.Errorf("at least one specialty is required")
	}
	if len(t.ZipCodes) == 0 && len(t.Cities) == 0 {
		return fmt.Errorf("at least one zip code or city is required")
	}
	for year, id := range t.Datasets {
		if id == "" {
			return fmt.Errorf("empty dataset id for year %d", year)
		}
	}
	return nil
}

// KnownYears returns the years with a dataset id, newest first.
func (t *Targets) KnownYears() []int {
	years := make([]int, 0, len(t.Datasets))
	for y := range t.Datasets {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Validate checks required fields for a collection run.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CMSCOLLECT_DSN is required")
	}
	if c.RecordLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}
	for _, y := range c.Years {
		if _, ok := c.Targets.Datasets[y]; !ok {
			return fmt.Errorf("no dataset configured for year %d (configured years: %v)", y, c.Targets.KnownYears())
		}
	}
	return c.Targets.Validate()
}

// ValidateWithFile checks DSN-independent settings for commands that read a file.
func (c *Config) ValidateWithFile() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}
