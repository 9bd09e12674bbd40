package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tinta-academy-api/api/swagger"
	"github.com/noah-isme/tinta-academy-api/internal/handler"
	"github.com/noah-isme/tinta-academy-api/internal/middleware"
	"github.com/noah-isme/tinta-academy-api/internal/repository"
	"github.com/noah-isme/tinta-academy-api/internal/service"
	"github.com/noah-isme/tinta-academy-api/pkg/broker"
	"github.com/noah-isme/tinta-academy-api/pkg/cache"
	"github.com/noah-isme/tinta-academy-api/pkg/config"
	"github.com/noah-isme/tinta-academy-api/pkg/database"
	"github.com/noah-isme/tinta-academy-api/pkg/export"
	"github.com/noah-isme/tinta-academy-api/pkg/fixtures"
	"github.com/noah-isme/tinta-academy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tinta-academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tinta-academy-api/pkg/middleware/requestid"
)

// @title Tinta Academy API
// @version 0.1.0
// @description Read model for the tinta Academy course marketplace.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{}

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, source cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
			checks["redis"] = cacheRepo.Ping
		}
	}

	sinks := []service.IntentSink{service.NewLogSink(logr)}
	if cfg.Intents.AMQPURL != "" {
		publisher, err := broker.NewPublisher(cfg.Intents.AMQPURL, cfg.Intents.AMQPQueue, logr)
		if err != nil {
			logr.Fatal("failed to connect to broker", zap.Error(err))
		}
		defer publisher.Close() //nolint:errcheck
		sinks = append(sinks, service.NewBrokerSink(publisher))
	}

	intents := service.NewIntentService(service.IntentServiceParams{
		Sinks:   sinks,
		Metrics: metrics,
		Logger:  logr,
		Config: service.IntentServiceConfig{
			Workers:    cfg.Intents.Workers,
			BufferSize: cfg.Intents.BufferSize,
			MaxRetries: cfg.Intents.MaxRetries,
			RetryDelay: cfg.Intents.RetryDelay,
		},
	})
	intents.Start(context.Background())

	delimiter, err := export.ParseDelimiter(cfg.Exports.CSVDelimiter)
	if err != nil {
		logr.Fatal("invalid export settings", zap.Error(err))
	}
	exports := service.NewExportService(export.NewExporter(export.WithDelimiter(delimiter)), metrics, logr)
	educatorParams := service.EducatorServiceParams{
		Intents: intents,
		Exports: exports,
		Cache:   cacheSvc,
		Logger:  logr,
		Config:  service.EducatorServiceConfig{QuickAccessLimit: cfg.Dashboard.QuickAccessLimit},
	}
	learnerParams := service.LearnerServiceParams{
		Exports: exports,
		Cache:   cacheSvc,
		Logger:  logr,
		Config:  service.LearnerServiceConfig{UYUPerUSD: cfg.Orders.UYUPerUSD},
	}

	var catalogSvc *service.CatalogService
	switch cfg.DataSource.Driver {
	case config.DataSourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		checks["postgres"] = db.PingContext
		catalogSvc = service.NewCatalogService(repository.NewCatalogRepository(db, metrics), cacheSvc, logr)
		educatorParams.Repo = repository.NewEducatorRepository(db, metrics)
		learnerParams.Repo = repository.NewLearnerRepository(db, metrics)
	default:
		bundle, err := fixtures.Load(cfg.DataSource.FixturesPath)
		if err == nil {
			err = fixtures.Validate(bundle)
		}
		if err != nil {
			logr.Fatal("failed to load fixtures", zap.Error(err))
		}
		repo := repository.NewFixtureRepository(bundle)
		catalogSvc = service.NewCatalogService(repo, cacheSvc, logr)
		educatorParams.Repo = repo
		learnerParams.Repo = repo
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, middleware.OperationalRoutes...))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, middleware.OperationalRoutes...))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.OptionalSession(cfg.Session.Secret))

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Educator: handler.NewEducatorHandler(service.NewEducatorService(educatorParams)),
		Learner:  handler.NewLearnerHandler(service.NewLearnerService(learnerParams)),
		Shell:    handler.NewShellHandler(),
		Intent:   handler.NewIntentHandler(intents),
		Metrics:  handler.NewMetricsHandler(metrics, checks),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "data_source", cfg.DataSource.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
	intents.Stop()
}
