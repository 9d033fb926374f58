package main

import (
	"net/http"

	"recordbook/internal/database"
	"recordbook/internal/handlers"
	"recordbook/internal/middleware"
	"recordbook/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	db           *database.DB
	store        services.RecordStoreInterface
	tokenService services.TokenServiceInterface
	rateLimiter  *middleware.RateLimiter
	corsOrigins  []string
	metrics      http.Handler
}

// newRouter builds the echo instance with middleware and every route.
func newRouter(deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	if deps.rateLimiter != nil {
		e.Use(deps.rateLimiter.Middleware())
	}

	health := handlers.NewHealthCheckHandler(deps.db, deps.store)
	docs := handlers.NewDocsHandler()
	records := handlers.NewRecordHandler(deps.store)
	reports := handlers.NewReportHandler(deps.store)

	e.GET("/health", health.HealthCheck)
	e.GET("/docs", docs.ServeScalarUI)
	e.GET("/docs/openapi.json", docs.ServeOAS3JSON)

	metrics := deps.metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	e.GET("/metrics", echo.WrapHandler(metrics))

	writeAuth := middleware.RequireWriteAuth(deps.tokenService)

	api := e.Group("/api/v1")
	api.GET("/stores", records.ListStores)

	store := api.Group("/stores/:store")
	store.GET("/records", records.ListRecords)
	store.POST("/records", records.CreateRecord, writeAuth)
	store.GET("/records/:id", records.GetRecord)
	store.PUT("/records/:id", records.UpdateRecord, writeAuth)
	store.DELETE("/records/:id", records.DeleteRecord, writeAuth)
	store.GET("/reports/yearly", reports.YearlyReport)
	store.GET("/reports/monthly", reports.MonthlyReport)

	return e
}
