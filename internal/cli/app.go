// Package cli implements the interactive calculators.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/pricing"
	"github.com/xtding233/skyblock-rng/internal/prompt"
	"github.com/xtding233/skyblock-rng/internal/report"
)

// Options control a session.
type Options struct {
	Seed       uint64 // 0: random
	Generator  string
	Quiet      bool
	QuietAbove int // rolls above this are run quietly; 0 disables
	MaxRolls   int // 0: unlimited
}

// App is one interactive session.
type App struct {
	Catalog *catalog.Loader
	Prices  pricing.PriceSource
	Logger  *log.Logger
	Options Options

	ask *prompt.Asker
	out *report.Printer
	now func() time.Time

	inputDone time.Time // when the last question was answered
}

// New creates an App reading answers from in and printing to out.
func New(in io.Reader, out io.Writer, cat *catalog.Loader, prices pricing.PriceSource, logger *log.Logger, opts Options) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		Catalog: cat,
		Prices:  prices,
		Logger:  logger,
		Options: opts,
		ask:     prompt.New(in, out),
		out:     report.New(out),
		now:     time.Now,
	}
}

// Menu choices.
const (
	choiceSkull = 1
	choiceRNG   = 2
)

// Run shows the menu, runs the chosen tool and prints the elapsed time.
// Running out of input ends the session without error.
func (a *App) Run(ctx context.Context) error {
	start := a.now()
	err := a.run(ctx)
	if errors.Is(err, prompt.ErrNoInput) {
		err = nil
	}

	end := a.now()
	a.out.Blank()
	if a.inputDone.IsZero() {
		a.out.Line("Took %s", end.Sub(start).Round(time.Microsecond))
	} else {
		a.out.Line("Took %s (%s without user input)",
			end.Sub(start).Round(time.Microsecond), end.Sub(a.inputDone).Round(time.Microsecond))
	}
	if ferr := a.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	a.out.Line("Select which tool you want to use:")
	a.out.Line(" 1. Master Skull upgrade price calculator")
	a.out.Line(" 2. RNG simulator")
	a.out.Blank()
	if err := a.out.Flush(); err != nil {
		return err
	}

	choice, err := a.ask.AskInt("Enter a number to select: ", prompt.Int(choiceSkull), prompt.Int(choiceRNG))
	if err != nil {
		return err
	}
	switch choice {
	case choiceSkull:
		return a.Skull(ctx)
	default:
		return a.RNG(ctx)
	}
}

// inputFinished marks the end of user interaction for elapsed-time reporting.
func (a *App) inputFinished() { a.inputDone = a.now() }

func (a *App) flush() error {
	if err := a.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
