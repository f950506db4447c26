package service

import (
	"context"
	"errors"

	"github.com/xtding233/skyblock-rng/internal/pricing"
)

var ErrNoPriceSource = errors.New("no auction price source configured")

// SkullPlanResponse carries the fetched prices and the upgrade plan.
type SkullPlanResponse struct {
	Quotes  []pricing.Quote `json:"quotes"`
	Missing []int           `json:"missing,omitempty"`
	Plan    pricing.Plan    `json:"plan"`
}

// PlanSkull fetches current Master Skull prices and plans an upgrade.
func (s *Service) PlanSkull(ctx context.Context, current, target int) (SkullPlanResponse, error) {
	if s.Prices == nil {
		return SkullPlanResponse{}, ErrNoPriceSource
	}
	if err := pricing.ValidateTiers(current, target); err != nil {
		return SkullPlanResponse{}, err
	}

	prices, err := pricing.FetchPrices(ctx, s.Prices)
	if err != nil {
		return SkullPlanResponse{}, err
	}
	plan, err := pricing.PlanUpgrade(current, target, prices)
	if err != nil {
		return SkullPlanResponse{}, err
	}
	return SkullPlanResponse{Quotes: prices.Quotes(), Missing: prices.Missing(), Plan: plan}, nil
}
