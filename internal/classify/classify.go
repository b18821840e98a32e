// Package classify decides which CMS records belong to the target geography
// and specialty set.
package classify

import (
	"strings"

	"github.com/gyeh/providerstats/internal/config"
	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
)

// Classifier holds the allow-lists in match-ready form. It is immutable
// after construction and safe to share.
type Classifier struct {
	zips        map[string]struct{}
	cities      map[string]struct{}
	specialties []string
}

// New builds a Classifier from the configured targets. Blank entries are
// ignored so they can never match a missing field.
func New(t config.Targets) *Classifier {
	c := &Classifier{
		zips:   make(map[string]struct{}, len(t.ZipCodes)),
		cities: make(map[string]struct{}, len(t.Cities)),
	}
	for _, z := range t.ZipCodes {
		if z = strings.TrimSpace(z); z != "" {
			c.zips[z] = struct{}{}
		}
	}
	for _, city := range t.Cities {
		if city = strings.ToUpper(strings.TrimSpace(city)); city != "" {
			c.cities[city] = struct{}{}
		}
	}
	for _, s := range t.Specialties {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			c.specialties = append(c.specialties, s)
		}
	}
	return c
}

// Accept reports whether rec is in the target geography AND has a target
// specialty. Both conditions are required.
func (c *Classifier) Accept(rec model.RawRecord) bool {
	return c.InGeography(rec) && c.InSpecialty(rec)
}

// InGeography matches the record's zip code exactly or its city
// case-insensitively. City matching is whole-name equality, not substring
// containment: "East Atlanta Village" does not match "Atlanta". Use the zip
// list to include neighborhoods that report their own city name.
func (c *Classifier) InGeography(rec model.RawRecord) bool {
	if zip := normalize.Text(rec, model.FieldZip5); zip != "" {
		if _, ok := c.zips[zip]; ok {
			return true
		}
	}
	city := strings.ToUpper(normalize.Text(rec, model.FieldCity))
	if city == "" {
		return false
	}
	_, ok := c.cities[city]
	return ok
}

// InSpecialty matches when the record's provider type contains any target
// specialty, ignoring case.
func (c *Classifier) InSpecialty(rec model.RawRecord) bool {
	specialty := strings.ToUpper(normalize.Text(rec, model.FieldProviderType))
	if specialty == "" {
		return false
	}
	for _, s := range c.specialties {
		if strings.Contains(specialty, s) {
			return true
		}
	}
	return false
}
