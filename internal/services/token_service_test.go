package services

import (
	"testing"
	"time"

	"recordbook/internal/config"
	"recordbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	cfg     config.SecurityConfig
	service TokenServiceInterface
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	s.cfg = config.SecurityConfig{
		JWTSecret:   "test-secret",
		JWTIssuer:   "test-issuer",
		JWTTokenTTL: time.Hour,
	}
	s.service = NewTokenService(&s.cfg)
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken("ledger-importer", ScopeWrite)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateToken(token, ScopeWrite)
	s.Require().NoError(err)
	s.Equal("ledger-importer", claims.Subject)
	s.Equal("test-issuer", claims.Issuer)

	_, err = uuid.Parse(claims.ID)
	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestGenerateToken_Errors() {
	_, _, err := s.service.GenerateToken("", ScopeWrite)
	s.ErrorIs(err, ErrEmptySubject)

	noSecret := NewTokenService(&config.SecurityConfig{JWTIssuer: "test-issuer", JWTTokenTTL: time.Hour})
	_, _, err = noSecret.GenerateToken("ledger-importer", ScopeWrite)
	s.ErrorIs(err, ErrMissingSecret)
}

func (s *TokenServiceTestSuite) TestValidateToken_Scope() {
	token, _, err := s.service.GenerateToken("reporter", "reports:read")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token, ScopeWrite)
	s.ErrorIs(err, ErrInvalidScope)

	claims, err := s.service.ValidateToken(token, "")
	s.NoError(err)
	s.Equal("reports:read", claims.Scope)

	multi, _, err := s.service.GenerateToken("admin", "reports:read "+ScopeWrite)
	s.Require().NoError(err)
	_, err = s.service.ValidateToken(multi, ScopeWrite)
	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestValidateToken_Empty() {
	claims, err := s.service.ValidateToken("", ScopeWrite)
	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateToken_Malformed() {
	claims, err := s.service.ValidateToken("not.a.token", ScopeWrite)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateToken_Expired() {
	cfg := s.cfg
	cfg.JWTTokenTTL = -time.Minute
	expired := NewTokenService(&cfg)

	token, _, err := expired.GenerateToken("ledger-importer", ScopeWrite)
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token, ScopeWrite)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateToken_WrongIssuer() {
	cfg := s.cfg
	cfg.JWTIssuer = "someone-else"

	token, _, err := NewTokenService(&cfg).GenerateToken("ledger-importer", ScopeWrite)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token, ScopeWrite)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidateToken_WrongSecret() {
	cfg := s.cfg
	cfg.JWTSecret = "other-secret"

	token, _, err := NewTokenService(&cfg).GenerateToken("ledger-importer", ScopeWrite)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token, ScopeWrite)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_RejectsUnsignedToken() {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scope: ScopeWrite,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token, ScopeWrite)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase bearer", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"no bearer prefix", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
		{"only bearer", "Bearer", "", true},
		{"bearer and space", "Bearer ", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				s.Empty(token)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, token)
		})
	}
}

func BenchmarkTokenService_ValidateToken(b *testing.B) {
	ts := NewTokenService(&config.SecurityConfig{
		JWTSecret:   "bench-secret",
		JWTIssuer:   "bench",
		JWTTokenTTL: time.Hour,
	})

	token, _, err := ts.GenerateToken("bench", ScopeWrite)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ts.ValidateToken(token, ScopeWrite)
	}
}
