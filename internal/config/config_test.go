package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.yaml")
	os.WriteFile(path, []byte("cities:\n  - Boston\nspecialties:\n  - Cardiology\ndatasets:\n  2023: ds-2023\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Targets.Cities) != 1 || c.Targets.Cities[0] != "Boston" {
		t.Errorf("unexpected cities: %v", c.Targets.Cities)
	}
	if len(c.Targets.Specialties) != 1 || c.Targets.Specialties[0] != "Cardiology" {
		t.Errorf("unexpected specialties: %v", c.Targets.Specialties)
	}
	if len(c.Targets.ZipCodes) != len(DefaultTargets().ZipCodes) {
		t.Errorf("zip codes should keep defaults, got %d", len(c.Targets.ZipCodes))
	}
	if c.Targets.Datasets[2023] != "ds-2023" {
		t.Errorf("dataset 2023 not merged: %v", c.Targets.Datasets)
	}
	if c.Targets.Datasets[2018] == "" {
		t.Errorf("default dataset 2018 should survive merge")
	}
}

func TestLoadFromFile_EmptyDatasetID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.yaml")
	os.WriteFile(path, []byte("datasets:\n  2030: \"\"\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for empty dataset id")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	c := Default()
	if err := c.LoadFromFile("/nonexistent/targets.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultTargets(t *testing.T) {
	tg := DefaultTargets()
	seen := make(map[string]bool)
	for _, z := range tg.ZipCodes {
		if seen[z] {
			t.Errorf("duplicate zip code %s", z)
		}
		seen[z] = true
	}
	years := tg.KnownYears()
	want := DefaultYears()
	if len(years) != len(want) {
		t.Fatalf("KnownYears: got %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("KnownYears[%d]: got %d, want %d", i, years[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err == nil {
		t.Error("expected error without DSN")
	}

	c.DSN = "postgres://localhost/test"
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	c.Years = []int{1999}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for year without dataset")
	}
	if !strings.Contains(err.Error(), "[2022 2021 2020 2019 2018]") {
		t.Errorf("error should list configured years: %v", err)
	}

	c.Years = DefaultYears()
	c.Targets.Specialties = nil
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty specialties")
	}
}
