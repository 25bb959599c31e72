package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmetrics "tneaCompass/app/echo-server/metrics"
	"tneaCompass/app/echo-server/router"
	"tneaCompass/business/catalog"
	"tneaCompass/business/recommend"
	"tneaCompass/internal/middleware"
	csvRepo "tneaCompass/internal/repository/csvdata"
	psqlRepo "tneaCompass/internal/repository/postgres"
	redisRepo "tneaCompass/internal/repository/redis"
	"tneaCompass/internal/rest"
	"tneaCompass/pkg/config"
	"tneaCompass/pkg/database"
	redisdb "tneaCompass/pkg/database/redis"
	"tneaCompass/pkg/logger"
	"tneaCompass/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting TNEA Compass", "version", cfg.App.Version)

	metrics.Init()
	appmetrics.Init()

	// Load the offering table once; it is read-only for the process lifetime.
	offeringRepo, err := loadOfferings(cfg)
	if err != nil {
		logger.Fatal("Failed to load offering dataset", "error", err)
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	offerings, err := offeringRepo.FindAll(startupCtx)
	startupCancel()
	if err != nil {
		logger.Fatal("Failed to read offering dataset", "error", err)
	}

	logger.Info("Dataset loaded", "source", cfg.Dataset.Source, "offerings", len(offerings))

	// Optional response cache
	var cache recommend.RecommendationCache
	if cfg.Redis.CacheEnabled {
		client, err := redisdb.NewClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.Close(client)

		cache = redisRepo.NewRecommendationCache(client, cfg.Redis.CacheTTL)
		logger.Info("Recommendation cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	// Init service
	recommenderService := recommend.NewRecommenderService(offeringRepo, cache, recommend.DefaultConfig())
	catalogService := catalog.NewCatalogService(offeringRepo)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommenderService)
	catalogHandler := rest.NewCatalogHandler(catalogService, rest.AppInfo{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	})

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.RequestID())
	e.Use(appmetrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetupCatalogRoutes(api, catalogHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// loadOfferings builds the offering repository for the configured dataset
// source.
func loadOfferings(cfg *config.Config) (recommend.OfferingRepository, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}

		repo := psqlRepo.NewOfferingRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repo.Load(ctx); err != nil {
			return nil, err
		}

		return repo, nil
	default:
		return csvRepo.NewOfferingRepository(cfg.Dataset.Dir)
	}
}
