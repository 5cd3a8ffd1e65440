package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fleetedge/telematics-core/internal/api"
	"github.com/fleetedge/telematics-core/internal/core/service"
	"github.com/fleetedge/telematics-core/internal/infrastructure/db/mongo"
	"github.com/fleetedge/telematics-core/internal/infrastructure/db/redis"
	"github.com/fleetedge/telematics-core/internal/infrastructure/queue"
	"github.com/fleetedge/telematics-core/internal/pkg/config"
	"github.com/fleetedge/telematics-core/pkg/logger"
)

// @title        FleetEdge Telematics Core API
// @version      1.0
// @description  Location ingestion, geofence event processing and detention billing for trucking fleets.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Repositories.
	breadcrumbRepo := mongo.NewBreadcrumbRepository(db)
	geotagRepo := mongo.NewGeotagRepository(db)
	geofenceRepo := mongo.NewGeofenceRepository(db)
	eventRepo := mongo.NewEventRepository(db)
	detentionRepo := mongo.NewDetentionRepository(db)
	loadRepo := mongo.NewLoadRepository(db)
	authRepo := mongo.NewAuthRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"breadcrumbs": breadcrumbRepo.EnsureIndexes,
		"geotags":     geotagRepo.EnsureIndexes,
		"geofences":   geofenceRepo.EnsureIndexes,
		"detention":   detentionRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// Services.
	detector := service.NewSpoofingDetector()
	tracker := service.NewSignalLossTracker(log)
	positionCache := redis.NewPositionCache(rdb)
	ingestor := service.NewBreadcrumbIngestor(breadcrumbRepo, positionCache, detector, log)
	geotagRecorder := service.NewGeotagRecorder(geotagRepo, log)
	geofenceFactory := service.NewGeofenceFactory(geofenceRepo, log)
	detentionClock := service.NewDetentionClock(detentionRepo, cfg.DetentionRatePerHour, log)
	compliance := service.NewStaticComplianceChecker()
	dedup := redis.NewDedupChecker(rdb)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	processor := service.NewGeofenceEventProcessor(
		eventRepo,
		geofenceRepo,
		loadRepo,
		geotagRecorder,
		detentionClock,
		tracker,
		compliance,
		dedup,
		log,
	)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, processor, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Mongo:      db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Log:        log,
		Ingestor:   ingestor,
		Tracker:    tracker,
		Dispatcher: dispatcher,
		Geofences:  geofenceFactory,
		Geotags:    geotagRecorder,
		Auth:       authService,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("telematics core started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
