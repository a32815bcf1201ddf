package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/globalway/tracking-service/internal/api/handler"
	"github.com/globalway/tracking-service/internal/core/service"
	"github.com/globalway/tracking-service/internal/document"
	mongodb "github.com/globalway/tracking-service/internal/infrastructure/db/mongo"
	redisdb "github.com/globalway/tracking-service/internal/infrastructure/db/redis"
	"github.com/globalway/tracking-service/internal/infrastructure/geocode"
	"github.com/globalway/tracking-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Dependencies ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	geocoder := geocode.NewCachedGeocoder(
		geocode.NewClient(geocode.Config{
			BaseURL:    cfg.Geocoder.BaseURL,
			UserAgent:  cfg.Geocoder.UserAgent,
			Timeout:    cfg.Geocoder.Timeout,
			RatePerSec: cfg.Geocoder.RatePerSec,
		}, log),
		rdb,
		log,
	)
	resolver := service.NewCoordinateResolver(geocoder, cfg.Geocoder.Timeout, log)
	shareStore := redisdb.NewShareStore(rdb, cfg.Share.TTL)
	trackingService := service.NewTrackingService(shipmentRepo, resolver, shareStore, cfg.Share.BaseURL, log)
	generator := document.NewGenerator(document.RemittanceDetails{
		BankName:      cfg.Remittance.BankName,
		AccountName:   cfg.Remittance.AccountName,
		AccountNumber: cfg.Remittance.AccountNumber,
		SwiftCode:     cfg.Remittance.SwiftCode,
	})

	trackingHandler := handler.NewTrackingHandler(trackingService, generator)

	// --- Tracking routes ---
	e.GET("/v1/tracking/:tracking_number", trackingHandler.Get)
	e.GET("/v1/tracking/:tracking_number/map", trackingHandler.GetMap)
	e.GET("/v1/tracking/:tracking_number/documents/:kind", trackingHandler.GetDocument)
	e.POST("/v1/tracking/:tracking_number/share", trackingHandler.CreateShare)
	e.GET("/t/:token", trackingHandler.ResolveShare)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
