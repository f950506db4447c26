package pricing

import (
	"errors"
	"slices"
)

// Master Skull tiers. Four skulls of one tier combine into one of the next.
const (
	MinTier       = 1
	MaxTier       = 7
	CombineFactor = 4
)

var (
	ErrInvalidTier = errors.New("invalid master skull tier; must be 1..7")
	ErrNoListings  = errors.New("no master skull is listed at or below the target tier")
)

// PriceList maps tier -> lowest BIN price in coins. Tiers nobody sells are absent.
type PriceList map[int]int64

// Quote is one tier's price broken down into lower-tier equivalents.
type Quote struct {
	Tier       int   `json:"tier"`
	Price      int64 `json:"price"`
	PerCombine int64 `json:"per_combine"`  // coins per 4x of the previous tier
	PerTierOne int64 `json:"per_tier_one"` // coins per tier one equivalent
}

// Plan summarizes an upgrade purchase.
type Plan struct {
	CurrentTier int   `json:"current_tier"`
	TargetTier  int   `json:"target_tier"`
	BuyTier     int   `json:"buy_tier"` // tier to buy and combine
	Qty         int64 `json:"qty"`
	UnitPrice   int64 `json:"unit_price"`
	TotalCost   int64 `json:"total_cost"`
}

// TierOnesRequired returns how many tier one skulls combine into one skull of tier.
func TierOnesRequired(tier int) int64 {
	n := int64(1)
	for i := MinTier; i < tier; i++ {
		n *= CombineFactor
	}
	return n
}

// Quotes returns the listed tiers in ascending order.
func (pl PriceList) Quotes() []Quote {
	tiers := make([]int, 0, len(pl))
	for tier := range pl {
		if validTier(tier) {
			tiers = append(tiers, tier)
		}
	}
	slices.Sort(tiers)

	out := make([]Quote, 0, len(tiers))
	for _, tier := range tiers {
		price := pl[tier]
		out = append(out, Quote{
			Tier:       tier,
			Price:      price,
			PerCombine: price / CombineFactor,
			PerTierOne: price / TierOnesRequired(tier),
		})
	}
	return out
}

// Missing returns the tiers nobody is selling.
func (pl PriceList) Missing() []int {
	var out []int
	for tier := MinTier; tier <= MaxTier; tier++ {
		if _, ok := pl[tier]; !ok {
			out = append(out, tier)
		}
	}
	return out
}

func validTier(tier int) bool {
	return tier >= MinTier && tier <= MaxTier
}
