package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xtding233/skyblock-rng/internal/auction"
	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/config"
	"github.com/xtding233/skyblock-rng/internal/logging"
	"github.com/xtding233/skyblock-rng/internal/rpc"
	"github.com/xtding233/skyblock-rng/internal/server"
	"github.com/xtding233/skyblock-rng/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	httpAddr := flag.String("http", cfg.HTTPAddr, "HTTP listen address")
	grpcAddr := flag.String("grpc", cfg.GRPCAddr, "gRPC listen address")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "YAML file merged over the built-in drop catalog")
	flag.Parse()

	logger := logging.New(os.Stderr, cfg.LogLevel, "server")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := catalog.NewLoader(*catalogPath)
	if _, err := loader.Load(); err != nil {
		config.Exitf("catalog: %v", err)
	}

	metrics := server.NewMetrics("")
	svc := service.New(loader, cfg.MaxRolls, logger)
	svc.DefaultGenerator = cfg.Generator
	svc.Recorder = metrics
	svc.Prices = auction.NewClient(cfg.AuctionURL, auction.WithTimeout(cfg.HTTPTimeout))

	if path := loader.OverridePath(); path != "" {
		w := catalog.NewFileWatcher([]string{path}, cfg.WatchInterval, func(p string) {
			loader.Invalidate()
			metrics.CatalogReloads.Inc()
			if _, err := loader.Load(); err != nil {
				logger.Error("catalog reload failed", "path", p, "err", err)
				return
			}
			logger.Info("catalog reloaded", "path", p)
		})
		w.Start()
		defer w.Stop()
	}

	httpSrv := &http.Server{
		Addr:              *httpAddr,
		Handler:           server.New(svc, metrics, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	grpcLis, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		config.Exitf("listen on %s: %v", *grpcAddr, err)
	}
	grpcSrv := rpc.NewServer(svc, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http listening", "addr", *httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Info("grpc listening", "addr", grpcLis.Addr().String())
		return grpcSrv.Serve(ctx, grpcLis)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bye")
}
