package dropsim

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean of xs. ok is false for an empty slice or
// if the sum overflows.
func Mean(xs []int) (mean float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum int64
	for _, v := range xs {
		x := int64(v)
		if (x > 0 && sum > math.MaxInt64-x) || (x < 0 && sum < math.MinInt64-x) {
			return 0, false
		}
		sum += x
	}
	return float64(sum) / float64(len(xs)), true
}

// Median returns the middle value of xs; even lengths average the two middle
// values. xs is not modified.
func Median(xs []int) (median float64, ok bool) {
	n := len(xs)
	if n == 0 {
		return 0, false
	}
	cp := slices.Clone(xs)
	slices.Sort(cp)
	if n%2 == 0 {
		return float64(cp[n/2-1]+cp[n/2]) / 2, true
	}
	return float64(cp[n/2]), true
}

// Mode returns the most frequent value of xs. Ties go to the smallest value.
func Mode(xs []int) (mode int, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	counts := make(map[int]int, len(xs))
	best := 0
	for _, v := range xs {
		counts[v]++
		c := counts[v]
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}
	return mode, true
}

// Range returns max(xs) - min(xs).
func Range(xs []int) (spread int, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return slices.Max(xs) - slices.Min(xs), true
}

// HasUniqueElements reports whether no value occurs twice in xs.
func HasUniqueElements(xs []int) bool {
	seen := make(map[int]struct{}, len(xs))
	for _, v := range xs {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Stat is one reported figure. Meter, when set, is the RNG meter percentage
// the value corresponds to.
type Stat struct {
	Value float64  `json:"value"`
	Meter *float64 `json:"meter,omitempty"`
}

// Distribution summarizes one sample. Fields are nil when not reportable:
// Mode needs a repeated value, Range needs more than one value.
type Distribution struct {
	Count  int   `json:"count"`
	Mean   *Stat `json:"mean,omitempty"`
	Median *Stat `json:"median,omitempty"`
	Mode   *Stat `json:"mode,omitempty"`
	Range  *Stat `json:"range,omitempty"`
	Max    *Stat `json:"max,omitempty"`
}

// Summary is the statistics block of a finished run.
type Summary struct {
	Rolls         int `json:"rolls"`
	Successes     int `json:"successes"`
	PossibleDrops int `json:"possible_drops"`
	// Successes as a percentage of PossibleDrops; nil when nothing was possible.
	SuccessShare *float64 `json:"success_share,omitempty"`

	MagicFind         Distribution `json:"magic_find"`
	RollsUntilSuccess Distribution `json:"rolls_until_success"`
	// The drop has no RNG meter, so meter figures are what the meter would
	// have shown had it existed.
	HypotheticalMeter bool `json:"hypothetical_meter"`
}

// Summarize computes the statistics of res. Meter equivalents use the
// unmodified base chance of the drop.
func Summarize(req Request, res Result) Summary {
	s := Summary{
		Rolls:             req.Rolls,
		Successes:         res.Successes,
		PossibleDrops:     res.PossibleDrops(),
		MagicFind:         distribution(res.MagicFindRequirements, nil),
		HypotheticalMeter: req.Modifiers.MeterPercent == nil,
	}
	if s.PossibleDrops > 0 {
		share := 100 - math.Abs(PercentageChange(float64(s.PossibleDrops), float64(s.Successes)))
		s.SuccessShare = &share
	}

	odds := Odds(req.Profile.BaseChance)
	s.RollsUntilSuccess = distribution(res.MeterSucceededRolls, func(v float64) float64 {
		return meterPercent(odds, v)
	})
	return s
}

func distribution(xs []int, meter func(float64) float64) Distribution {
	d := Distribution{Count: len(xs)}
	stat := func(v float64) *Stat {
		st := &Stat{Value: v}
		if meter != nil {
			m := meter(v)
			st.Meter = &m
		}
		return st
	}

	if mean, ok := Mean(xs); ok {
		d.Mean = stat(mean)
	}
	if median, ok := Median(xs); ok {
		d.Median = stat(median)
	}
	if !HasUniqueElements(xs) {
		if mode, ok := Mode(xs); ok {
			d.Mode = stat(float64(mode))
		}
	}
	if len(xs) > 1 {
		if spread, ok := Range(xs); ok {
			d.Range = stat(float64(spread))
		}
	}
	if len(xs) > 0 {
		d.Max = stat(float64(slices.Max(xs)))
	}
	return d
}
