package dropsim

import "errors"

var (
	ErrInvalidChance    = errors.New("invalid drop chance; must be > 0")
	ErrInvalidMagicFind = errors.New("invalid magic find; must be 0..900")
	ErrInvalidLooting   = errors.New("invalid looting level; must be 0..5")
	ErrInvalidMeter     = errors.New("invalid rng meter percent; must be 0..100")
	ErrMeterUnsupported = errors.New("rng meter percent given for a drop without an rng meter")
	ErrMeterRequired    = errors.New("rng meter percent is required for a drop with an rng meter")
	ErrInvalidRolls     = errors.New("invalid roll count; must be >= 0")
	ErrTooManyRolls     = errors.New("roll count exceeds the configured maximum")
)
