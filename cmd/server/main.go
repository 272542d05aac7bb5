package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/config"
	"github.com/hooprivals/stats-service/internal/handler"
	"github.com/hooprivals/stats-service/internal/logger"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/repository/postgres"
	"github.com/hooprivals/stats-service/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, repository.PoolConfig{
		Host:              cfg.Postgres.Host,
		Port:              cfg.Postgres.Port,
		User:              cfg.Postgres.User,
		Password:          cfg.Postgres.Password,
		DBName:            cfg.Postgres.DBName,
		SSLMode:           cfg.Postgres.SSLMode,
		MaxConns:          cfg.Postgres.MaxConns,
		MinConns:          cfg.Postgres.MinConns,
		MaxConnLifetime:   time.Duration(cfg.Postgres.MaxConnLifetime) * time.Second,
		MaxConnIdleTime:   time.Duration(cfg.Postgres.MaxConnIdleTime) * time.Second,
		HealthCheckPeriod: time.Duration(cfg.Postgres.HealthCheckPeriod) * time.Second,
	}, &appLogger)
	if err != nil {
		log.Fatalf("postgres connection failed: %v", err)
	}
	defer pool.Close()

	matchRepo := postgres.NewMatchRepository(pool)
	statRepo := postgres.NewStatRepository(pool)
	challengeRepo := postgres.NewChallengeRepository(pool)
	txManager := postgres.NewTxManager(pool)
	pinger := postgres.NewPinger(pool)

	matchSvc := service.NewMatchService(matchRepo, txManager, appLogger)
	statsSvc := service.NewStatsService(matchRepo, statRepo, txManager, appLogger)
	reportSvc := service.NewReportService(matchRepo, appLogger)
	challengeSvc := service.NewChallengeService(challengeRepo, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, pinger, matchSvc, statsSvc, reportSvc, challengeSvc)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", cfg.Server.Addr).Msg("service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
