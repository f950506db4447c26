package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Loader reads the embedded catalog and merges an optional override file on top.
type Loader struct {
	overridePath string // empty: embedded catalog only

	mu    sync.RWMutex
	cache *Catalog
}

// NewLoader creates a loader. overridePath may be empty or point to a file
// that does not exist yet.
func NewLoader(overridePath string) *Loader {
	return &Loader{overridePath: overridePath}
}

// OverridePath returns the override file the loader reads, if any.
func (l *Loader) OverridePath() string { return l.overridePath }

// Load returns the merged, validated catalog. Results are cached until
// Invalidate is called.
func (l *Loader) Load() (Catalog, error) {
	l.mu.RLock()
	if l.cache != nil {
		cat := *l.cache
		cat.Drops = slices.Clone(cat.Drops)
		l.mu.RUnlock()
		return cat, nil
	}
	l.mu.RUnlock()

	def, err := parseYAML(defaultYAML)
	if err != nil {
		return Catalog{}, fmt.Errorf("read default: %w", err)
	}
	merged := def
	if l.overridePath != "" {
		override, err := readYAML(l.overridePath)
		if err != nil {
			return Catalog{}, fmt.Errorf("read override %s: %w", l.overridePath, err)
		}
		merged = mergeRaw(def, override)
	}

	cat, err := Normalize(merged)
	if err != nil {
		return Catalog{}, err
	}

	l.mu.Lock()
	l.cache = &cat
	l.mu.Unlock()
	return cat, nil
}

// Invalidate clears the cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = nil
}

// readYAML loads a YAML file. Missing files return a zero catalog, no error.
func readYAML(path string) (RawCatalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawCatalog{}, nil
		}
		return RawCatalog{}, err
	}
	return parseYAML(b)
}

func parseYAML(b []byte) (RawCatalog, error) {
	var raw RawCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawCatalog{}, err
	}
	return raw, nil
}

// mergeRaw merges b over a. Drops are matched by id: set fields of b win,
// drops unknown to a are appended in b's order.
func mergeRaw(a, b RawCatalog) RawCatalog {
	out := RawCatalog{
		Version: a.Version,
		Notes:   a.Notes,
		Drops:   append([]RawDrop(nil), a.Drops...),
	}
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	index := make(map[string]int, len(out.Drops))
	for i, d := range out.Drops {
		index[d.ID] = i
	}
	for _, d := range b.Drops {
		i, ok := index[d.ID]
		if !ok {
			index[d.ID] = len(out.Drops)
			out.Drops = append(out.Drops, d)
			continue
		}
		cur := &out.Drops[i]
		if d.Name != "" {
			cur.Name = d.Name
		}
		if d.Chance != nil {
			cur.Chance = d.Chance
		}
		if d.Looting != nil {
			cur.Looting = d.Looting
		}
		if d.Meter != nil {
			cur.Meter = d.Meter
		}
		if d.Source != "" {
			cur.Source = d.Source
		}
	}
	return out
}
