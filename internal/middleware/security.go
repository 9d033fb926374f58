package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultCSP = "default-src 'self'"

	// docsCSP lets the Scalar page load its bundle, styles and fonts from the CDN.
	docsCSP = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
		"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: https: blob:; " +
		"connect-src 'self'; " +
		"worker-src 'self' blob:"
)

// SecurityHeaders adds security headers to responses. Record data is never
// cached; handlers that serve static content may override Cache-Control.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

			if isDocsPath(c.Request().URL.Path) {
				h.Set("Content-Security-Policy", docsCSP)
			} else {
				h.Set("Content-Security-Policy", defaultCSP)
			}

			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}

func isDocsPath(path string) bool {
	return path == "/docs" || strings.HasPrefix(path, "/docs/")
}
