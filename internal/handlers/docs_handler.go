package handlers

import (
	"crypto/md5"
	"embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed docs/scalar.html docs/openapi.json
var docsFS embed.FS

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	oas3JSON   []byte
}

// NewDocsHandler creates a documentation handler serving the embedded pages
func NewDocsHandler() *DocsHandler {
	scalarHTML, _ := docsFS.ReadFile("docs/scalar.html")
	oas3JSON, _ := docsFS.ReadFile("docs/openapi.json")

	return &DocsHandler{
		scalarHTML: scalarHTML,
		scalarETag: generateETag(scalarHTML),
		oas3JSON:   oas3JSON,
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI document loaded by the Scalar page
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	if len(h.oas3JSON) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "API document not available")
	}
	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.oas3JSON)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
