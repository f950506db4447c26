package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/xtding233/skyblock-rng/internal/dropsim"
)

var ErrUnknownDrop = errors.New("unknown drop")

// CustomID is the profile id of a drop with a user-supplied chance.
const CustomID = "custom"

// Normalize validates raw and converts it into a Catalog.
func Normalize(raw RawCatalog) (Catalog, error) {
	if err := ValidateRaw(raw); err != nil {
		return Catalog{}, err
	}
	cat := Catalog{Version: raw.Version, Drops: make([]Drop, 0, len(raw.Drops))}
	for _, d := range raw.Drops {
		cat.Drops = append(cat.Drops, Drop{
			Profile: dropsim.Profile{
				ID:         d.ID,
				Name:       d.Name,
				BaseChance: *d.Chance,
				Looting:    d.Looting != nil && *d.Looting,
				Meter:      d.Meter != nil && *d.Meter,
			},
			Source: d.Source,
		})
	}
	return cat, nil
}

// Profile looks a drop up by id.
func (c Catalog) Profile(id string) (dropsim.Profile, error) {
	for _, d := range c.Drops {
		if d.ID == id {
			return d.Profile, nil
		}
	}
	return dropsim.Profile{}, fmt.Errorf("%w: %q", ErrUnknownDrop, id)
}

// Custom builds the profile of a drop that is not in the catalog.
// Looting applies to it; the RNG meter does not.
func Custom(chance float64) (dropsim.Profile, error) {
	if math.IsNaN(chance) || math.IsInf(chance, 0) || chance <= 0 {
		return dropsim.Profile{}, dropsim.ErrInvalidChance
	}
	return dropsim.Profile{
		ID:         CustomID,
		Name:       "Custom",
		BaseChance: chance,
		Looting:    true,
	}, nil
}
