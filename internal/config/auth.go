package config

import (
	"fmt"
	"time"
)

// AuthConfig holds bearer-token authentication configuration.
type AuthConfig struct {
	// Secret signs and verifies HS256 tokens.
	Secret string
	// TokenTTL is the lifetime of issued access tokens.
	TokenTTL time.Duration
	// Issuer is the iss claim on issued tokens.
	Issuer string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:   GetEnv("JWT_SECRET", ""),
		TokenTTL: GetEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		Issuer:   GetEnv("JWT_ISSUER", "membership"),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be greater than 0")
	}
	return nil
}
