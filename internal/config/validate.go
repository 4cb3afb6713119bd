package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Cache.Enabled {
		if c.Cache.Size <= 0 {
			return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be > 0 (got %v)", c.Cache.TTL)
		}
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.FirstInterval <= 0 {
		return fmt.Errorf("first_interval must be > 0 (got %d)", s.FirstInterval)
	}
	if s.SecondInterval < s.FirstInterval {
		return fmt.Errorf("second_interval must be >= first_interval (got %d < %d)",
			s.SecondInterval, s.FirstInterval)
	}
	return nil
}
