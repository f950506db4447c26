// Package service runs simulations on behalf of the HTTP and gRPC APIs.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/dropsim"
	"github.com/xtding233/skyblock-rng/internal/pricing"
)

var ErrBadRequest = errors.New("bad request")

// SimulateRequest selects a drop either by catalog id or by custom chance.
type SimulateRequest struct {
	Drop         string   `json:"drop,omitempty"`
	Chance       *float64 `json:"chance,omitempty"` // custom drop chance in percent
	MeterPercent *float64 `json:"meter_percent,omitempty"`
	MagicFind    int      `json:"magic_find"`
	Looting      int      `json:"looting"`
	Rolls        int      `json:"rolls"`
	Seed         uint64   `json:"seed,omitempty"` // 0: random
	Generator    string   `json:"generator,omitempty"`
}

// SimulateResponse is a finished run.
type SimulateResponse struct {
	RunID           string          `json:"run_id"`
	Seed            uint64          `json:"seed"`
	Generator       string          `json:"generator"`
	Profile         dropsim.Profile `json:"profile"`
	EffectiveChance float64         `json:"effective_chance"`
	Successes       int             `json:"successes"`
	PossibleDrops   int             `json:"possible_drops"`
	Summary         dropsim.Summary `json:"summary"`
}

// DropsResponse lists the catalog.
type DropsResponse struct {
	Catalog catalog.Catalog `json:"catalog"`
}

// CatalogSource provides the current drop catalog.
type CatalogSource interface {
	Load() (catalog.Catalog, error)
}

// Recorder observes finished runs.
type Recorder interface {
	ObserveRun(drop string, rolls, successes int, elapsed time.Duration)
}

// Service resolves requests against the catalog and runs them.
type Service struct {
	Catalog          CatalogSource
	MaxRolls         int
	DefaultGenerator string
	Recorder         Recorder            // optional
	Prices           pricing.PriceSource // optional, enables PlanSkull
	Logger           *log.Logger
}

// New creates a Service. A nil logger discards output.
func New(cat CatalogSource, maxRolls int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		Catalog:          cat,
		MaxRolls:         maxRolls,
		DefaultGenerator: dropsim.GeneratorPCG,
		Logger:           logger,
	}
}

// Drops returns the catalog.
func (s *Service) Drops(ctx context.Context) (DropsResponse, error) {
	if err := ctx.Err(); err != nil {
		return DropsResponse{}, err
	}
	cat, err := s.Catalog.Load()
	if err != nil {
		return DropsResponse{}, fmt.Errorf("load catalog: %w", err)
	}
	return DropsResponse{Catalog: cat}, nil
}

// Simulate resolves, validates and runs req. The run itself is not
// interruptible; ctx is checked before it starts.
func (s *Service) Simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error) {
	profile, err := s.resolve(req)
	if err != nil {
		return SimulateResponse{}, err
	}
	simReq := dropsim.Request{
		Profile: profile,
		Modifiers: dropsim.Modifiers{
			MagicFind:    req.MagicFind,
			LootingLevel: req.Looting,
			MeterPercent: req.MeterPercent,
		},
		Rolls: req.Rolls,
	}
	if err := dropsim.Validate(simReq); err != nil {
		return SimulateResponse{}, err
	}

	generator := req.Generator
	if generator == "" {
		generator = s.DefaultGenerator
	}
	seed := req.Seed
	if seed == 0 {
		if seed, err = dropsim.NewSeed(); err != nil {
			return SimulateResponse{}, err
		}
	}
	rng, err := dropsim.NewRNG(generator, seed)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	if err := ctx.Err(); err != nil {
		return SimulateResponse{}, err
	}

	runID := uuid.NewString()
	sim := dropsim.NewSimulator(rng, s.Logger.With("run_id", runID))
	sim.MaxRolls = s.MaxRolls

	start := time.Now()
	res, err := sim.Run(simReq)
	if err != nil {
		return SimulateResponse{}, err
	}
	elapsed := time.Since(start)
	if s.Recorder != nil {
		s.Recorder.ObserveRun(profile.ID, req.Rolls, res.Successes, elapsed)
	}
	s.Logger.Debug("simulation finished", "run_id", runID, "drop", profile.ID,
		"rolls", req.Rolls, "successes", res.Successes, "elapsed", elapsed)

	return SimulateResponse{
		RunID:           runID,
		Seed:            seed,
		Generator:       generator,
		Profile:         profile,
		EffectiveChance: simReq.StartingChance(),
		Successes:       res.Successes,
		PossibleDrops:   res.PossibleDrops(),
		Summary:         dropsim.Summarize(simReq, res),
	}, nil
}

func (s *Service) resolve(req SimulateRequest) (dropsim.Profile, error) {
	switch {
	case req.Drop != "" && req.Chance != nil:
		return dropsim.Profile{}, fmt.Errorf("%w: give either drop or chance, not both", ErrBadRequest)
	case req.Chance != nil:
		return catalog.Custom(*req.Chance)
	case req.Drop == "" || req.Drop == catalog.CustomID:
		return dropsim.Profile{}, fmt.Errorf("%w: drop or chance is required", ErrBadRequest)
	}
	cat, err := s.Catalog.Load()
	if err != nil {
		return dropsim.Profile{}, fmt.Errorf("load catalog: %w", err)
	}
	return cat.Profile(req.Drop)
}

// IsClientError reports whether err was caused by the request.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrBadRequest,
		pricing.ErrInvalidTier,
		dropsim.ErrInvalidChance,
		dropsim.ErrInvalidMagicFind,
		dropsim.ErrInvalidLooting,
		dropsim.ErrInvalidMeter,
		dropsim.ErrMeterUnsupported,
		dropsim.ErrMeterRequired,
		dropsim.ErrInvalidRolls,
		dropsim.ErrTooManyRolls,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
