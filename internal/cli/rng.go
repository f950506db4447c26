package cli

import (
	"context"
	"fmt"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/dropsim"
	"github.com/xtding233/skyblock-rng/internal/prompt"
)

// RNG asks for a drop and player stats, then simulates and reports the rolls.
func (a *App) RNG(ctx context.Context) error {
	req, err := a.askRequest()
	if err != nil {
		return err
	}
	a.inputFinished()

	seed := a.Options.Seed
	if seed == 0 {
		if seed, err = dropsim.NewSeed(); err != nil {
			return err
		}
	}
	rng, err := dropsim.NewRNG(a.Options.Generator, seed)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a.out.Quiet = a.Options.Quiet || (a.Options.QuietAbove > 0 && req.Rolls > a.Options.QuietAbove)
	a.out.Header(req.StartingChance(), req.Rolls)

	sim := dropsim.NewSimulator(rng, a.Logger)
	sim.MaxRolls = a.Options.MaxRolls
	sim.OnRoll = a.out.Roll
	res, err := sim.Run(req)
	if err != nil {
		return err
	}

	s := dropsim.Summarize(req, res)
	a.out.Summary(s)
	a.out.Statistics(s)
	a.out.Blank()
	a.out.Line("Seed: %d (%s generator)", seed, generatorName(a.Options.Generator))
	return a.flush()
}

func generatorName(g string) string {
	if g == "" {
		return dropsim.GeneratorPCG
	}
	return g
}

func (a *App) askRequest() (dropsim.Request, error) {
	var req dropsim.Request

	cat, err := a.Catalog.Load()
	if err != nil {
		return req, fmt.Errorf("load catalog: %w", err)
	}
	a.out.DropMenu(cat)
	if err := a.flush(); err != nil {
		return req, err
	}

	custom := len(cat.Drops) + 1
	sel, err := a.ask.AskInt("Enter a number to select: ", prompt.Int(1), prompt.Int(custom))
	if err != nil {
		return req, err
	}
	if sel == custom {
		if req.Profile, err = a.askCustom(); err != nil {
			return req, err
		}
	} else {
		req.Profile = cat.Drops[sel-1].Profile
	}

	if req.Profile.Meter {
		meter, err := a.ask.AskFloat("Enter your current RNG meter completion percentage for this drop: ",
			prompt.Float(0), prompt.Float(100))
		if err != nil {
			return req, err
		}
		req.Modifiers.MeterPercent = &meter
	}

	if req.Modifiers.MagicFind, err = a.ask.AskInt("What is your Magic Find? (0-900): ",
		prompt.Int(0), prompt.Int(dropsim.MaxMagicFind)); err != nil {
		return req, err
	}

	if req.Profile.Looting {
		if req.Modifiers.LootingLevel, err = a.ask.AskInt("What is your Looting level? (if it works on this drop, 0-5): ",
			prompt.Int(0), prompt.Int(dropsim.MaxLootingLevel)); err != nil {
			return req, err
		}
	}

	var maxRolls *int
	if a.Options.MaxRolls > 0 {
		maxRolls = prompt.Int(a.Options.MaxRolls)
	}
	if req.Rolls, err = a.ask.AskInt("How many rolls you want to do?: ", prompt.Int(0), maxRolls); err != nil {
		return req, err
	}
	return req, nil
}

func (a *App) askCustom() (dropsim.Profile, error) {
	for {
		chance, err := a.ask.AskFloat("Enter custom drop chance: ", nil, nil)
		if err != nil {
			return dropsim.Profile{}, err
		}
		p, err := catalog.Custom(chance)
		if err == nil {
			return p, nil
		}
		a.out.Line("%v", err)
		if err := a.flush(); err != nil {
			return dropsim.Profile{}, err
		}
	}
}
