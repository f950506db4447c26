package dropsim

import (
	"io"

	"github.com/charmbracelet/log"
)

// Profile describes one drop. It is fixed for a whole run.
type Profile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	BaseChance float64 `json:"chance"`  // percent
	Looting    bool    `json:"looting"` // Looting raises the chance
	Meter      bool    `json:"meter"`   // the drop has an RNG meter
}

// Modifiers are the player's stats for a run.
type Modifiers struct {
	MagicFind    int      `json:"magic_find"`
	LootingLevel int      `json:"looting"`
	MeterPercent *float64 `json:"meter_percent,omitempty"` // nil: no RNG meter for this drop
}

// LootingBonus returns the Looting bonus in percent for this run.
func (r Request) LootingBonus() float64 {
	return LootingBonus(r.Modifiers.LootingLevel, r.Profile.Looting)
}

// StartingChance is the effective chance of the first roll: the starting
// meter percent applied, then Magic Find and Looting.
func (r Request) StartingChance() float64 {
	chance := r.Profile.BaseChance
	if p := r.Modifiers.MeterPercent; p != nil {
		chance = NewMeter(chance, p).FinalChance(*p)
	}
	return EffectiveChance(chance, r.Modifiers.MagicFind, r.LootingBonus())
}

// Request is one simulation run.
type Request struct {
	Profile   Profile   `json:"profile"`
	Modifiers Modifiers `json:"modifiers"`
	Rolls     int       `json:"rolls"`
}

// RollOutcome reports a single roll.
type RollOutcome struct {
	Roll            int         `json:"roll"` // 1-based
	Progress        int         `json:"progress"`
	MeterPercent    float64     `json:"meter_percent"`
	FinalChance     float64     `json:"final_chance"`     // after the RNG meter
	EffectiveChance float64     `json:"effective_chance"` // after Magic Find and Looting
	Draw            float64     `json:"draw"`
	Succeeded       bool        `json:"succeeded"`
	Requirement     Feasibility `json:"requirement"`
}

// Result accumulates a run.
type Result struct {
	Successes int `json:"successes"`
	// Minimum Magic Find of every roll winnable at MaxMagicFind, in roll order.
	MagicFindRequirements []int `json:"magic_find_requirements"`
	// Meter progress of every successful roll, in roll order.
	MeterSucceededRolls []int `json:"meter_succeeded_rolls"`
}

// PossibleDrops is the number of rolls that would have succeeded at MaxMagicFind.
func (r Result) PossibleDrops() int {
	return len(r.MagicFindRequirements)
}

// Simulator runs drop simulations.
type Simulator struct {
	RNG      RandomSource
	Logger   *log.Logger
	MaxRolls int               // 0 means no limit
	OnRoll   func(RollOutcome) // optional, called after every roll
}

// NewSimulator creates a simulator drawing from rng.
// A nil rng falls back to DefaultRNG, a nil logger discards diagnostics.
func NewSimulator(rng RandomSource, logger *log.Logger) *Simulator {
	if rng == nil {
		rng = DefaultRNG()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{RNG: rng, Logger: logger}
}

// Run simulates req.Rolls rolls in order.
//
// Rolls cannot be reordered or parallelised: each roll's meter progress
// depends on when the previous success happened.
func (s *Simulator) Run(req Request) (Result, error) {
	if err := validateRequest(req); err != nil {
		return Result{}, err
	}
	if s.MaxRolls > 0 && req.Rolls > s.MaxRolls {
		return Result{}, ErrTooManyRolls
	}

	st := newRollState(req, s.Logger)
	for roll := 1; roll <= req.Rolls; roll++ {
		out := st.step(roll, s.RNG.Float64())
		if s.OnRoll != nil {
			s.OnRoll(out)
		}
	}
	return st.result, nil
}

// rollState is the accumulator carried from one roll to the next.
type rollState struct {
	meter        *Meter
	magicFind    int
	lootingBonus float64
	logger       *log.Logger
	result       Result
}

func newRollState(req Request, logger *log.Logger) *rollState {
	capacity := min(req.Rolls, 4096)
	return &rollState{
		meter:        NewMeter(req.Profile.BaseChance, req.Modifiers.MeterPercent),
		magicFind:    req.Modifiers.MagicFind,
		lootingBonus: req.LootingBonus(),
		logger:       logger,
		result: Result{
			MagicFindRequirements: make([]int, 0, capacity),
			MeterSucceededRolls:   make([]int, 0, capacity),
		},
	}
}

// step applies one roll with the given uniform draw.
func (st *rollState) step(roll int, draw float64) RollOutcome {
	progress, ok := st.meter.Progress(roll)
	if !ok {
		st.logger.Warn("loss of precision converting meter progress to int, value was clamped",
			"roll", roll, "progress", progress)
	}
	percent := st.meter.Percent(progress)
	finalChance := st.meter.FinalChance(percent)
	effective := EffectiveChance(finalChance, st.magicFind, st.lootingBonus)

	succeeded := draw < effective/100
	st.meter.Record(roll, succeeded)

	// A failed roll already proves every Magic Find up to the player's fails.
	var startFrom *int
	if !succeeded {
		next := st.magicFind + 1
		startFrom = &next
	}
	requirement, found := MinMagicFind(draw, finalChance, st.lootingBonus, startFrom)
	if !found {
		st.logger.Error("minimum magic find search ended without a result although max magic find passes",
			"roll", roll, "draw", draw, "chance", finalChance, "looting", st.lootingBonus)
	}

	if succeeded {
		st.result.Successes++
		st.result.MeterSucceededRolls = append(st.result.MeterSucceededRolls, progress)
	}
	if requirement.Possible {
		st.result.MagicFindRequirements = append(st.result.MagicFindRequirements, requirement.MagicFind)
	}

	return RollOutcome{
		Roll:            roll,
		Progress:        progress,
		MeterPercent:    percent,
		FinalChance:     finalChance,
		EffectiveChance: effective,
		Draw:            draw,
		Succeeded:       succeeded,
		Requirement:     requirement,
	}
}
