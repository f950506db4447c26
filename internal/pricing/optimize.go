package pricing

import "math"

// BestTier finds the tier with the lowest price per tier one equivalent.
// Integer division is used, and ties go to the lower tier.
func BestTier(prices PriceList) (tier int, perTierOne int64, ok bool) {
	return bestTierUpTo(prices, MaxTier)
}

func bestTierUpTo(prices PriceList, limit int) (tier int, perTierOne int64, ok bool) {
	perTierOne = math.MaxInt64
	for t := MinTier; t <= limit; t++ {
		price, listed := prices[t]
		if !listed {
			continue
		}
		if p := price / TierOnesRequired(t); p < perTierOne {
			tier, perTierOne, ok = t, p, true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return tier, perTierOne, true
}

// PlanUpgrade computes the cheapest way to go from current to target by
// buying skulls of a single tier and combining them.
//
// Only tiers up to target are considered. When the best tier is at or below
// current, the skull already owned counts toward the combine; above current
// it cannot be combined and the full amount is bought.
func PlanUpgrade(current, target int, prices PriceList) (Plan, error) {
	if err := ValidateTiers(current, target); err != nil {
		return Plan{}, err
	}
	plan := Plan{CurrentTier: current, TargetTier: target}
	if current == target {
		return plan, nil
	}

	best, _, ok := bestTierUpTo(prices, target)
	if !ok {
		return Plan{}, ErrNoListings
	}

	qty := TierOnesRequired(target - best + 1)
	if best <= current {
		qty -= TierOnesRequired(current - best + 1)
	}

	plan.BuyTier = best
	plan.Qty = qty
	plan.UnitPrice = prices[best]
	plan.TotalCost = qty * prices[best]
	return plan, nil
}

// ValidateTiers checks that current and target are tiers and target is not below current.
func ValidateTiers(current, target int) error {
	if !validTier(current) || !validTier(target) || target < current {
		return ErrInvalidTier
	}
	return nil
}
