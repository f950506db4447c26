package pricing

import (
	"context"
	"fmt"

	"github.com/xtding233/skyblock-rng/internal/auction"
)

// PriceSource returns lowest BIN prices keyed by item id.
type PriceSource interface {
	LowestBINs(ctx context.Context, ids []string) (map[string]int64, error)
}

// FetchPrices looks up every Master Skull tier in one fan-out. When some
// lookups fail the prices that were fetched are returned with the error.
func FetchPrices(ctx context.Context, src PriceSource) (PriceList, error) {
	ids := make([]string, 0, MaxTier)
	for tier := MinTier; tier <= MaxTier; tier++ {
		ids = append(ids, auction.MasterSkullID(tier))
	}
	byID, err := src.LowestBINs(ctx, ids)
	if err != nil {
		err = fmt.Errorf("fetch master skull prices: %w", err)
	}

	prices := make(PriceList, len(byID))
	for tier := MinTier; tier <= MaxTier; tier++ {
		if p, ok := byID[auction.MasterSkullID(tier)]; ok {
			prices[tier] = p
		}
	}
	return prices, err
}
