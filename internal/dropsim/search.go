package dropsim

// Feasibility is the outcome of a minimum Magic Find search.
type Feasibility struct {
	Possible  bool `json:"possible"`   // false if the draw fails even at MaxMagicFind
	MagicFind int  `json:"magic_find"` // smallest passing Magic Find; meaningful only if Possible
}

// Impossible is the Feasibility of a draw no Magic Find can win.
var Impossible = Feasibility{}

// Value returns the Magic Find requirement, or ImpossibleMagicFind.
func (f Feasibility) Value() int {
	if !f.Possible {
		return ImpossibleMagicFind
	}
	return f.MagicFind
}

// MinMagicFind finds the smallest Magic Find in [startFrom, MaxMagicFind] for
// which draw passes against chance with the given Looting bonus.
//
// It first checks MaxMagicFind and returns Impossible right away if even that
// fails. Otherwise it scans upward from startFrom (0 when nil). The scan ends
// without a result only if the chance function is not monotonic in Magic
// Find; that case also returns Impossible, with found == false so the caller
// can report it.
func MinMagicFind(draw, chance, lootingBonus float64, startFrom *int) (f Feasibility, found bool) {
	if !Passes(draw, chance, MaxMagicFind, lootingBonus) {
		return Impossible, true
	}

	start := 0
	if startFrom != nil && *startFrom > 0 {
		start = *startFrom
	}
	for mf := start; mf <= MaxMagicFind; mf++ {
		if Passes(draw, chance, mf, lootingBonus) {
			return Feasibility{Possible: true, MagicFind: mf}, true
		}
	}
	return Impossible, false
}
