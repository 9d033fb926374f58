package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"recordbook/internal/config"
	"recordbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ScopeWrite is the token scope that allows record writes.
const ScopeWrite = "records:write"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidScope      = errors.New("token does not grant the required scope")
	ErrEmptyToken        = errors.New("empty token")
	ErrEmptySubject      = errors.New("token subject cannot be empty")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrMissingSecret     = errors.New("JWT secret is not configured")
)

// TokenService signs and verifies HS256 bearer tokens
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new token service from the security configuration
func NewTokenService(cfg *config.SecurityConfig) TokenServiceInterface {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTTokenTTL,
	}
}

// GenerateToken signs a token for subject granting scope.
func (ts *TokenService) GenerateToken(subject, scope string) (string, time.Time, error) {
	if len(ts.secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}
	if subject == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	now := time.Now()
	expiresAt := now.Add(ts.ttl)

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Scope: scope,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature, expiry, issuer and scope of a token.
func (ts *TokenService) ValidateToken(tokenString, requiredScope string) (*models.TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, ts.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ts.issuer {
		return nil, ErrInvalidIssuer
	}
	if requiredScope != "" && !hasScope(claims.Scope, requiredScope) {
		return nil, ErrInvalidScope
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	if len(ts.secret) == 0 {
		return nil, ErrMissingSecret
	}
	return ts.secret, nil
}

// hasScope reports whether the space separated scope list grants want.
func hasScope(scopes, want string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == want {
			return true
		}
	}
	return false
}
