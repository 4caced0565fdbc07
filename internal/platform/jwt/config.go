package jwtmw

import (
	"errors"
	"log/slog"
	"time"

	"loginform/internal/platform/config"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the HMAC secret.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyAllowDevSecret opts into devSecret when JWT_SECRET is unset. Local use only.
	EnvKeyAllowDevSecret = "JWT_ALLOW_DEV_SECRET"
)

// devSecret is public; it is only used with JWT_ALLOW_DEV_SECRET=true.
const devSecret = "dev-secret-change-me"

// ErrMissingSecret is returned when no signing secret is configured.
var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// Config holds token settings.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig reads JWT_SECRET and JWT_EXPIRATION (default 1h).
// An empty secret is an error unless JWT_ALLOW_DEV_SECRET is true.
func LoadConfig() (Config, error) {
	secret := config.String(EnvKeyJWTSecret, "")
	if secret == "" {
		if !config.Bool(EnvKeyAllowDevSecret, false) {
			return Config{}, ErrMissingSecret
		}
		slog.Warn("JWT_SECRET is not set; using the development secret. Never do this in production.")
		secret = devSecret
	}
	return Config{
		Secret:     secret,
		Expiration: config.Duration("JWT_EXPIRATION", time.Hour),
	}, nil
}
