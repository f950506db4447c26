package report

import (
	"github.com/xtding233/skyblock-rng/internal/pricing"
)

// SkullPrices prints every listed Master Skull tier and flags the missing
// ones. With incomplete set a missing tier may just have failed to load, so
// nothing is flagged.
func (p *Printer) SkullPrices(prices pricing.PriceList, incomplete bool) {
	p.Blank()
	if !incomplete {
		for _, tier := range prices.Missing() {
			p.Line("%s", p.fail.Render(p.num.Sprintf("No one is selling Master Skull - Tier %d!", tier)))
		}
	}
	for _, q := range prices.Quotes() {
		if q.Tier == pricing.MinTier {
			p.Line("Master Skull - Tier %d is priced %s", q.Tier, p.coins(q.Price))
			continue
		}
		p.Line("Master Skull - Tier %d is priced %s, equals to %s coins per 4x of Tier %d skulls, or %s coins per %dx of Tier 1 skulls",
			q.Tier, p.coins(q.Price), p.coins(q.PerCombine), q.Tier-1, p.coins(q.PerTierOne), pricing.TierOnesRequired(q.Tier))
	}
}

// SkullPlan prints the upgrade recommendation.
func (p *Printer) SkullPlan(plan pricing.Plan) {
	p.Blank()
	if plan.Qty == 0 {
		p.Line("%s", p.pass.Render("You already have the target Master Skull tier."))
		return
	}
	p.Line("The best tier to buy and combine is Tier %d. To upgrade from Master Skull - Tier %d to Master Skull - Tier %d "+
		"combining Master Skull - Tier %ds, you need to buy and combine %sx of Master Skull - Tier %ds, which would cost you %s coins.",
		plan.BuyTier, plan.CurrentTier, plan.TargetTier, plan.BuyTier,
		p.num.Sprintf("%d", plan.Qty), plan.BuyTier, p.coins(plan.TotalCost))
}

// FetchFailed reports a price lookup that went wrong.
func (p *Printer) FetchFailed(err error) {
	p.Line("%s", p.fail.Render("Error when fetching prices: "+err.Error()))
}

// CriticalErrors closes a run that hit errors along the way.
func (p *Printer) CriticalErrors() {
	p.Blank()
	p.Line("%s", p.note.Render("Critical error(s) occurred while running the program. Please read above for details."))
}

func (p *Printer) coins(v int64) string {
	return p.accent.Render(p.num.Sprintf("%d", v))
}
