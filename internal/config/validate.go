package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatch() error {
	if c.Match.FuzzyThreshold <= 0 || c.Match.FuzzyThreshold > 1 {
		return fmt.Errorf("match.fuzzy_threshold must be in (0, 1], got %v", c.Match.FuzzyThreshold)
	}
	if c.Match.PreviewMembers < 1 {
		return errors.New("match.preview_members must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
