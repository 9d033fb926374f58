package handlers

import (
	"context"
	"net/http"
	"time"

	"recordbook/internal/errors"
	"recordbook/internal/services"

	"github.com/labstack/echo/v4"
)

// DatabaseChecker is the connection pool the health check probes.
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
	Driver() string
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    DatabaseChecker
	store services.RecordStoreInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db DatabaseChecker, store services.RecordStoreInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, store: store}
}

// HealthCheck reports database connectivity and the state of the record database
// @Summary Health check
// @Description Check API, database connectivity and record database status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,driver=string,database=string,version=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	db, err := h.store.Open(requestContext(c))
	if err != nil {
		return SendError(c, errors.StoreOpenFailed, errors.WithDetails("Record database is not available"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"time":     time.Now().UTC().Format(time.RFC3339),
		"driver":   h.db.Driver(),
		"database": db.Name(),
		"version":  db.Version(),
	})
}
