package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recordbook/internal/config"
	"recordbook/internal/models"
	"recordbook/internal/services"
	"recordbook/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.newTokenService("test-secret", time.Hour)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) newTokenService(secret string, ttl time.Duration) services.TokenServiceInterface {
	return services.NewTokenService(&config.SecurityConfig{
		JWTSecret:   secret,
		JWTIssuer:   "test-issuer",
		JWTTokenTTL: ttl,
	})
}

// serve runs the middleware in front of a 200 handler and returns the recorder
// and whether the handler was reached.
func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/expenses/records", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// Auth middleware uses SendError which sends response and returns nil
	s.Require().NoError(handler(c))
	return rec, c, reached
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateToken("ledger-importer", services.ScopeWrite)
	s.Require().NoError(err)

	rec, c, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "Bearer "+token)

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ledger-importer", c.Get(TokenSubjectContextKey))
	s.NotEmpty(c.Get(TokenIDContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "InvalidToken")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "Bearer invalid.jwt.token")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expired := s.newTokenService("test-secret", -time.Minute)
	token, _, err := expired.GenerateToken("ledger-importer", services.ScopeWrite)
	s.Require().NoError(err)

	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "Bearer "+token)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentSecret() {
	token, _, err := s.newTokenService("other-secret", time.Hour).GenerateToken("ledger-importer", services.ScopeWrite)
	s.Require().NoError(err)

	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "Bearer "+token)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingScope() {
	token, _, err := s.tokenService.GenerateToken("reporter", "reports:read")
	s.Require().NoError(err)

	rec, _, reached := s.serve(RequireAuth(s.tokenService, services.ScopeWrite), "Bearer "+token)

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "token does not grant records:write")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WithMockedTokenService() {
	mockTokens := service_mocks.NewMockTokenServiceInterface(s.ctrl)
	mockTokens.EXPECT().ExtractTokenFromHeader("Bearer abc").Return("abc", nil)
	mockTokens.EXPECT().ValidateToken("abc", services.ScopeWrite).Return(&models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "cron", ID: "jti-1"},
		Scope:            services.ScopeWrite,
	}, nil)

	rec, c, reached := s.serve(RequireAuth(mockTokens, services.ScopeWrite), "Bearer abc")

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("cron", c.Get(TokenSubjectContextKey))
	s.Equal("jti-1", c.Get(TokenIDContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireWriteAuth_DisabledWithoutTokenService() {
	rec, _, reached := s.serve(RequireWriteAuth(nil), "")

	s.True(reached)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireWriteAuth_Enabled() {
	rec, _, reached := s.serve(RequireWriteAuth(s.tokenService), "")

	s.False(reached)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
