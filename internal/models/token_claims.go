package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the claims carried by bearer tokens for write routes.
// Scope is a space separated list.
type TokenClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}
