package config

import "fmt"

// SecurityConfig holds transport security configuration.
type SecurityConfig struct {
	// ForceSSL redirects plaintext traffic to HTTPS when true.
	ForceSSL bool
	// TrustProxy accepts X-Forwarded-Proto from a fronting proxy as
	// evidence of secure transport.
	TrustProxy bool
	// SSLHost overrides the redirect target host; empty keeps the
	// request host.
	SSLHost string
	// HSTSMaxAgeSeconds is the Strict-Transport-Security max-age.
	HSTSMaxAgeSeconds int
}

// LoadSecurityConfigFromEnv loads security configuration from environment variables.
func LoadSecurityConfigFromEnv() SecurityConfig {
	return SecurityConfig{
		ForceSSL:          GetEnvBool("FORCE_SSL", false),
		TrustProxy:        GetEnvBool("TRUST_PROXY", false),
		SSLHost:           GetEnv("SSL_HOST", ""),
		HSTSMaxAgeSeconds: GetEnvInt("HSTS_MAX_AGE", 31536000),
	}
}

// Validate validates security configuration.
func (c SecurityConfig) Validate() error {
	if c.HSTSMaxAgeSeconds < 0 {
		return fmt.Errorf("HSTS_MAX_AGE must be non-negative")
	}
	return nil
}
