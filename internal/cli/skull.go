package cli

import (
	"context"
	"errors"

	"github.com/xtding233/skyblock-rng/internal/pricing"
	"github.com/xtding233/skyblock-rng/internal/prompt"
)

// Skull asks for the current and target Master Skull tiers, fetches prices
// and prints the cheapest upgrade.
func (a *App) Skull(ctx context.Context) error {
	current, err := a.ask.AskInt("Enter your current Master Skull tier: ",
		prompt.Int(pricing.MinTier), prompt.Int(pricing.MaxTier))
	if err != nil {
		return err
	}

	target := pricing.MaxTier
	if next := min(current+1, pricing.MaxTier); next < pricing.MaxTier {
		if target, err = a.ask.AskInt("Enter your target Master Skull tier: ",
			prompt.Int(next), prompt.Int(pricing.MaxTier)); err != nil {
			return err
		}
	}
	a.inputFinished()

	if current == target {
		a.out.Line("You already have the Tier %d Master Skull, exiting.", pricing.MaxTier)
		return a.flush()
	}

	if a.Prices == nil {
		return errors.New("no auction price source configured")
	}
	prices, fetchErr := pricing.FetchPrices(ctx, a.Prices)
	if fetchErr != nil {
		a.Logger.Error("master skull prices incomplete", "err", fetchErr)
		a.out.FetchFailed(fetchErr)
	}
	a.out.SkullPrices(prices, fetchErr != nil)

	plan, err := pricing.PlanUpgrade(current, target, prices)
	switch {
	case errors.Is(err, pricing.ErrNoListings):
		if fetchErr == nil {
			a.out.Blank()
			a.out.Line("Can't find a best tier to buy and combine. No one selling any Master Skulls at all?")
		}
	case err != nil:
		return err
	default:
		a.out.SkullPlan(plan)
	}
	if fetchErr != nil {
		a.out.CriticalErrors()
		if err := a.flush(); err != nil {
			return err
		}
		return fetchErr
	}
	return a.flush()
}
