package dropsim

import "math"

const (
	// MaxMagicFind is the highest Magic Find a player can reach.
	MaxMagicFind = 900
	// ImpossibleMagicFind is reported when a draw fails even at MaxMagicFind.
	ImpossibleMagicFind = MaxMagicFind + 1
	// MaxLootingLevel is the highest Looting enchantment level.
	MaxLootingLevel = 5
	// LootingPerLevel is the drop chance bonus, in percent, per Looting level.
	LootingPerLevel = 15
)

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1

// CompareFloat reports whether a and b differ by less than the machine epsilon.
func CompareFloat(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// PercentOf returns percent% of number.
func PercentOf(number, percent float64) float64 {
	return number / 100 * percent
}

// PercentageChange returns the change from start to end in percent of start.
// The denominator is floored at 1 so a zero baseline does not blow up.
func PercentageChange(start, end float64) float64 {
	return (end - start) / math.Max(math.Abs(start), 1) * 100
}

// Odds converts a percentage chance into its "1 in N" form.
func Odds(chance float64) float64 {
	return 100 / chance
}

// LootingBonus returns the extra chance in percent granted by a Looting level.
// Drops that ignore Looting get no bonus.
func LootingBonus(level int, supported bool) float64 {
	if !supported {
		return 0
	}
	return float64(level * LootingPerLevel)
}

// EffectiveChance applies Magic Find and then the Looting bonus to chance.
// Both bonuses are percentage-of-percentage, so they compound.
//
// The float64 conversions keep each product rounded on its own; a fused
// multiply-add would shift results at the boundaries MinMagicFind checks.
func EffectiveChance(chance float64, magicFind int, lootingBonus float64) float64 {
	withMagicFind := chance + float64(PercentOf(chance, float64(magicFind)))
	return withMagicFind + float64(PercentOf(withMagicFind, lootingBonus))
}

// Passes reports whether draw succeeds against chance under the given
// Magic Find and Looting bonus.
func Passes(draw, chance float64, magicFind int, lootingBonus float64) bool {
	return draw < EffectiveChance(chance, magicFind, lootingBonus)/100
}

// meterPercent converts progress towards odds into an RNG meter percentage.
// It saturates at 100 once progress reaches odds.
func meterPercent(odds, progress float64) float64 {
	return 100 - math.Abs(PercentageChange(odds, math.Min(progress, odds)))
}

// MeterEquivalent expresses a roll count as the RNG meter percentage it
// would have filled for a drop with the given base chance.
func MeterEquivalent(baseChance, rolls float64) float64 {
	return meterPercent(Odds(baseChance), rolls)
}
