package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/finmesh/collateral-backend/internal/adapter/httpapi"
	"github.com/finmesh/collateral-backend/internal/adapter/source/staticsrc"
	"github.com/finmesh/collateral-backend/internal/infrastructure/config"
	"github.com/finmesh/collateral-backend/internal/usecase/valuation"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// 1. Load configuration (defaults + file + env overrides)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize data sources
	// The static sources serve the reference dataset; production deployments
	// substitute implementations backed by the real upstream services.
	positions := staticsrc.NewPositions()
	eligibility := staticsrc.NewEligibility()
	prices := staticsrc.NewPrices()

	// 3. Initialize the valuation service (use case)
	valuationService := valuation.NewService(positions, eligibility, prices)

	// 4. Start HTTP server
	apiServer := httpapi.NewServer(valuationService, positions, eligibility, prices, cfg)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiServer.Handler(),
	}

	go func() {
		log.Printf("Collateral service listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve HTTP server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(httpServer, cfg)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(httpServer *http.Server, cfg *config.Config) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}
