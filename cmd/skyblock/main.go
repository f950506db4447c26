package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/xtding233/skyblock-rng/internal/auction"
	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/cli"
	"github.com/xtding233/skyblock-rng/internal/config"
	"github.com/xtding233/skyblock-rng/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	quiet := flag.Bool("quiet", false, "do not print every roll")
	seed := flag.Uint64("seed", cfg.Seed, "generator seed, 0 for a random one")
	generator := flag.String("rng", cfg.Generator, "generator: pcg or java")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "YAML file merged over the built-in drop catalog")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	cfg.Seed, cfg.Generator, cfg.CatalogPath, cfg.LogLevel = *seed, *generator, *catalogPath, *logLevel
	if err := cfg.Validate(); err != nil {
		config.Exitf("config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, "skyblock")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.New(os.Stdin, os.Stdout,
		catalog.NewLoader(cfg.CatalogPath),
		auction.NewClient(cfg.AuctionURL, auction.WithTimeout(cfg.HTTPTimeout)),
		logger,
		cli.Options{
			Seed:       cfg.Seed,
			Generator:  cfg.Generator,
			Quiet:      *quiet,
			QuietAbove: cfg.QuietAbove,
			MaxRolls:   cfg.MaxRolls,
		})
	if err := app.Run(ctx); err != nil {
		logger.Error("session failed", "err", err)
		os.Exit(1)
	}
}
