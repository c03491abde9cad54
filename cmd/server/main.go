// Package main is the entry point for the portfolio optimization and risk
// analytics engine. It wires the fund catalog, the capital market assumption
// set, and the analytics services behind an HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavenwealth/optimizer/internal/config"
	"github.com/mavenwealth/optimizer/internal/database"
	"github.com/mavenwealth/optimizer/internal/modules/catalog"
	cataloghandlers "github.com/mavenwealth/optimizer/internal/modules/catalog/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/cma"
	"github.com/mavenwealth/optimizer/internal/modules/comparison"
	comparisonhandlers "github.com/mavenwealth/optimizer/internal/modules/comparison/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/frontier"
	frontierhandlers "github.com/mavenwealth/optimizer/internal/modules/frontier/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/hybrid"
	hybridhandlers "github.com/mavenwealth/optimizer/internal/modules/hybrid/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/insights"
	"github.com/mavenwealth/optimizer/internal/modules/metrics"
	"github.com/mavenwealth/optimizer/internal/modules/rebalancing"
	rebalancinghandlers "github.com/mavenwealth/optimizer/internal/modules/rebalancing/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/scoring"
	scoringhandlers "github.com/mavenwealth/optimizer/internal/modules/scoring/handlers"
	"github.com/mavenwealth/optimizer/internal/modules/stress"
	stresshandlers "github.com/mavenwealth/optimizer/internal/modules/stress/handlers"
	"github.com/mavenwealth/optimizer/internal/server"
	"github.com/mavenwealth/optimizer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting optimizer")

	// Fund catalog database
	fundsDB, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "funds.db"),
		Name: "funds",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open funds database")
	}
	defer fundsDB.Close()

	repo := catalog.NewRepository(fundsDB.Conn(), log)
	if err := repo.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize fund catalog schema")
	}
	if err := repo.SeedIfEmpty(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed fund catalog")
	}

	// Analytics services share one capital market assumption set.
	assumptions := cma.Default()
	calc := metrics.NewCalculator(assumptions)

	scorer, err := scoring.NewScorer(scoring.DefaultWeights, assumptions.RiskFreeRate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create fund scorer")
	}
	scorer.SetMinAUM(cfg.Engine.MinFundAUM)

	builder := hybrid.NewBuilder(calc, scorer, repo, log)
	builder.SetCoreSplit(cfg.Engine.CoreSplit)

	frontierGen := frontier.NewGenerator(assumptions, log)
	stressEngine := stress.NewEngine(calc, log)
	insightsGen := insights.NewGenerator(calc, stressEngine, log)
	comparer := comparison.NewComparer(repo, log)

	monitor := rebalancing.NewMonitor(rebalancing.Thresholds{
		CriticalDriftPct: cfg.Engine.DriftThresholds.CriticalPct,
		WarningRatio:     cfg.Engine.DriftThresholds.WarningShare,
		MinTradeAmount:   decimal.NewFromFloat(cfg.Engine.DriftThresholds.MinTradeAmount),
	}, log)

	srv := server.New(server.Config{
		Log:     log,
		FundsDB: fundsDB,
		Config:  cfg,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,
		Handlers: server.Handlers{
			Catalog:     cataloghandlers.NewHandler(repo, log),
			Scoring:     scoringhandlers.NewHandler(repo, scorer, calc, insightsGen, log),
			Hybrid:      hybridhandlers.NewHandler(builder, log),
			Frontier:    frontierhandlers.NewHandler(frontierGen, log),
			Stress:      stresshandlers.NewHandler(stressEngine, log),
			Rebalancing: rebalancinghandlers.NewHandler(monitor, log),
			Comparison:  comparisonhandlers.NewHandler(comparer, log),
		},
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
