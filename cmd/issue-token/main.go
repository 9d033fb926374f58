package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"recordbook/internal/config"
	"recordbook/internal/services"
)

// issue-token mints a bearer token for the write routes using JWT_SECRET and
// JWT_ISSUER from the environment.
func main() {
	subject := flag.String("subject", "", "token subject, e.g. the importing job name")
	scope := flag.String("scope", services.ScopeWrite, "space separated scopes")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	if !cfg.Security.AuthEnabled() {
		logger.Error("JWT_SECRET must be set to issue tokens")
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.Security.JWTTokenTTL = *ttl
	}

	token, expiresAt, err := services.NewTokenService(&cfg.Security).GenerateToken(*subject, *scope)
	if err != nil {
		logger.Error("failed to issue token", "error", err)
		os.Exit(1)
	}

	logger.Info("token issued", "subject", *subject, "expires_at", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
