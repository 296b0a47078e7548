package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Ticket.validate(); err != nil {
		return fmt.Errorf("ticket: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.APIPerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

func (t *TicketConfig) validate() error {
	if t.MaxAttachmentsPerCall < 0 || t.MaxAttachmentsPerCall > 50 {
		return fmt.Errorf("max_attachments_per_call must be in [0, 50] (got %d)", t.MaxAttachmentsPerCall)
	}
	if t.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max_description_length must be > 0 (got %d)", t.MaxDescriptionLength)
	}
	return nil
}
