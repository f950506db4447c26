package dropsim

import (
	"math"
)

func validateChance(chance float64) error {
	if math.IsNaN(chance) || math.IsInf(chance, 0) {
		return ErrInvalidChance
	}
	if chance <= 0 {
		return ErrInvalidChance
	}
	return nil
}

func validateRequest(req Request) error {
	if err := validateChance(req.Profile.BaseChance); err != nil {
		return err
	}
	m := req.Modifiers
	if m.MagicFind < 0 || m.MagicFind > MaxMagicFind {
		return ErrInvalidMagicFind
	}
	if m.LootingLevel < 0 || m.LootingLevel > MaxLootingLevel {
		return ErrInvalidLooting
	}
	if req.Profile.Meter && m.MeterPercent == nil {
		return ErrMeterRequired
	}
	if m.MeterPercent != nil {
		if !req.Profile.Meter {
			return ErrMeterUnsupported
		}
		p := *m.MeterPercent
		if math.IsNaN(p) || p < 0 || p > 100 {
			return ErrInvalidMeter
		}
	}
	if req.Rolls < 0 {
		return ErrInvalidRolls
	}
	return nil
}

// Validate checks req without running it.
func Validate(req Request) error {
	return validateRequest(req)
}
