// types.go
package catalog

import "github.com/xtding233/skyblock-rng/internal/dropsim"

// RawCatalog is the YAML document; mirrors default.yaml.
type RawCatalog struct {
	Version string    `yaml:"version"`
	Drops   []RawDrop `yaml:"drops"`
	Notes   string    `yaml:"notes,omitempty"`
}

// RawDrop is one catalog entry as written. Pointer fields tell an override
// that leaves a value alone apart from one that sets it to zero.
type RawDrop struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Chance  *float64 `yaml:"chance"` // percent
	Looting *bool    `yaml:"looting,omitempty"`
	Meter   *bool    `yaml:"meter,omitempty"`
	Source  string   `yaml:"source,omitempty"`
}

// Drop is a normalized catalog entry.
type Drop struct {
	dropsim.Profile
	Source string `json:"source,omitempty"`
}

// Catalog is the ordered list of known drops.
type Catalog struct {
	Version string `json:"version"`
	Drops   []Drop `json:"drops"`
}
