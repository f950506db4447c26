package dropsim

import "math"

// Meter tracks RNG meter progress for one simulation run.
//
// Progress counts rolls since the last success. Before the first success it
// starts from the offset implied by the player's starting meter percentage.
// A success resets the count; the next roll has progress 1.
type Meter struct {
	BaseChance float64 // drop chance in percent, before any bonus
	Odds       float64 // 100 / BaseChance
	Supported  bool    // false when the drop has no RNG meter

	offset      float64 // progress carried in from the starting meter percent
	lastSuccess int     // roll index of the last success
	reset       bool    // whether any success happened yet
}

// noMeterPercent is the starting percent assumed for drops without an RNG
// meter. It puts the hypothetical progress one percent of the odds behind
// the roll count.
const noMeterPercent = -1

// NewMeter creates a meter for a drop with the given base chance.
// A nil startPercent means the drop has no RNG meter; progress is still
// tracked so rolls-until-success can be reported hypothetically.
func NewMeter(baseChance float64, startPercent *float64) *Meter {
	m := &Meter{
		BaseChance: baseChance,
		Odds:       Odds(baseChance),
		Supported:  startPercent != nil,
	}
	start := float64(noMeterPercent)
	if startPercent != nil {
		start = *startPercent
	}
	m.offset = PercentOf(m.Odds, start)
	return m
}

// Progress returns the meter progress at roll, truncated toward zero.
// ok is false if the value was out of int range and had to be clamped.
func (m *Meter) Progress(roll int) (progress int, ok bool) {
	if m.reset {
		return roll - m.lastSuccess, true
	}
	return truncate(m.offset + float64(roll))
}

// Percent converts progress into a meter percentage, saturating at 100.
func (m *Meter) Percent(progress int) float64 {
	return meterPercent(m.Odds, float64(progress))
}

// FinalChance returns the drop chance for a roll at the given meter percent.
// A full meter guarantees the drop; a partial meter multiplies the base chance
// by up to 3x. Drops without a meter always use the base chance.
func (m *Meter) FinalChance(percent float64) float64 {
	if !m.Supported {
		return m.BaseChance
	}
	if percent >= 100 {
		return 100
	}
	return m.BaseChance * (1 + 2*percent/100)
}

// Record updates the meter after roll. On success progress restarts from the
// next roll.
func (m *Meter) Record(roll int, succeeded bool) {
	if !succeeded {
		return
	}
	m.reset = true
	m.lastSuccess = roll
}

// truncate converts v to int toward zero. NaN and out-of-range values are
// clamped and reported with ok == false.
func truncate(v float64) (int, bool) {
	t := math.Trunc(v)
	switch {
	case math.IsNaN(t):
		return 0, false
	case t >= math.MaxInt:
		return math.MaxInt, false
	case t <= math.MinInt:
		return math.MinInt, false
	}
	return int(t), true
}
