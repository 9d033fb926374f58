package middleware

import (
	stderrors "errors"

	"recordbook/internal/errors"
	"recordbook/internal/handlers"
	"recordbook/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// TokenSubjectContextKey holds the subject of the verified bearer token
	TokenSubjectContextKey = "token_subject"
	// TokenIDContextKey holds the jti of the verified bearer token
	TokenIDContextKey = "token_jti"
)

// RequireAuth creates a middleware that requires a valid bearer token
// granting scope
func RequireAuth(tokenService services.TokenServiceInterface, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token, scope)
			switch {
			case stderrors.Is(err, services.ErrExpiredToken):
				return handlers.SendError(c, errors.AuthExpiredToken)
			case stderrors.Is(err, services.ErrInvalidScope):
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("token does not grant "+scope))
			case err != nil:
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(TokenSubjectContextKey, claims.Subject)
			c.Set(TokenIDContextKey, claims.ID)

			return next(c)
		}
	}
}

// RequireWriteAuth guards record writes. It is a no-op when tokenService is nil,
// which is how the server runs without a configured JWT secret.
func RequireWriteAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	if tokenService == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return RequireAuth(tokenService, services.ScopeWrite)
}
