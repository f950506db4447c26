package catalog

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawCatalog.
func ValidateRaw(raw RawCatalog) error {
	var errs []string

	if len(raw.Drops) == 0 {
		errs = append(errs, "drops must not be empty")
	}

	seen := make(map[string]bool, len(raw.Drops))
	for i, d := range raw.Drops {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("drops[%d].id is required", i))
		} else if seen[d.ID] {
			errs = append(errs, fmt.Sprintf("drops[%d].id %q is duplicated", i, d.ID))
		}
		seen[d.ID] = true

		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, fmt.Sprintf("drops[%d].name is required", i))
		}
		switch {
		case d.Chance == nil:
			errs = append(errs, fmt.Sprintf("drops[%d].chance is required", i))
		case math.IsNaN(*d.Chance) || *d.Chance <= 0 || *d.Chance > 100:
			errs = append(errs, fmt.Sprintf("drops[%d].chance must be in (0,100]", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
