package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fleetedge/telematics-core/docs"
	"github.com/fleetedge/telematics-core/internal/api/handler"
	"github.com/fleetedge/telematics-core/internal/api/middleware"
	"github.com/fleetedge/telematics-core/internal/core/ports"
	"github.com/fleetedge/telematics-core/internal/core/service"
)

// Dependencies carries everything the router needs. Services are constructed
// in main so the dispatcher and tracker instances are shared with the worker
// pool.
type Dependencies struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	JWTSecret  string
	Log        zerolog.Logger
	Ingestor   ports.BreadcrumbIngestor
	Tracker    *service.SignalLossTracker
	Dispatcher handler.EventDispatcher
	Geofences  ports.GeofenceFactory
	Geotags    ports.GeotagRecorder
	Auth       ports.AuthService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("telematics"))
	e.Validator = handler.NewValidator()

	authHandler := handler.NewAuthHandler(deps.Auth)
	locationHandler := handler.NewLocationHandler(deps.Ingestor, deps.Tracker)
	eventHandler := handler.NewEventHandler(deps.Dispatcher)
	geofenceHandler := handler.NewGeofenceHandler(deps.Geofences)
	geotagHandler := handler.NewGeotagHandler(deps.Geotags)
	intelHandler := handler.NewIntelHandler(
		service.NewETAEngine(),
		service.NewRouteDeviationDetector(),
		service.NewHazmatRouter(),
	)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	anyRole := middleware.RBAC("driver", "dispatcher", "safety", "admin")
	staff := middleware.RBAC("dispatcher", "safety", "admin")

	v1.POST("/locations", locationHandler.IngestBatch, anyRole)
	v1.POST("/signal-loss", locationHandler.ReportSignalLoss, anyRole)

	v1.POST("/geofence-events", eventHandler.Receive, staff)
	v1.POST("/geofence-events/batch", eventHandler.ReceiveBatch, staff)

	v1.POST("/loads/:id/geofences", geofenceHandler.Create, staff)
	v1.GET("/loads/:id/geofences", geofenceHandler.List, anyRole)
	v1.DELETE("/loads/:id/geofences", geofenceHandler.Deactivate, staff)

	v1.GET("/loads/:id/geotags", geotagHandler.ListForLoad, staff)
	v1.GET("/drivers/:id/geotags", geotagHandler.ListForDriver, anyRole)

	v1.POST("/eta", intelHandler.EstimateETA, anyRole)
	v1.POST("/route-deviation", intelHandler.CheckDeviation, anyRole)
	v1.GET("/hazmat/:class", intelHandler.HazmatAdvice, anyRole)
	v1.POST("/channels", intelHandler.Channels, anyRole)

	return e
}
