package config

import (
	"fmt"
	"net/url"
)

// Serialization modes for the selection reconciler.
const (
	SerializationPerKey = "per_key"
	SerializationGlobal = "global"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.WritesPerMinute <= 0 {
		return fmt.Errorf("server.writes_per_minute must be > 0 (got %d)", c.Server.WritesPerMinute)
	}

	if c.Selection.MaxSelectionsPerUser <= 0 {
		return fmt.Errorf("selection.max_selections_per_user must be > 0 (got %d)", c.Selection.MaxSelectionsPerUser)
	}

	return nil
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", c.RequestTimeout)
	}
	if c.NoticeTTL <= 0 {
		return fmt.Errorf("notice_ttl must be > 0 (got %v)", c.NoticeTTL)
	}
	switch c.Serialization {
	case SerializationPerKey, SerializationGlobal:
	default:
		return fmt.Errorf("serialization must be %q or %q (got %q)", SerializationPerKey, SerializationGlobal, c.Serialization)
	}
	return nil
}
