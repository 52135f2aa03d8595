package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. TMDB credentials are not
// checked here; only automatic mode needs them, enforced by RequireTMDB.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.TMDB.BaseURL, "http://") && !strings.HasPrefix(c.TMDB.BaseURL, "https://") {
		return fmt.Errorf("tmdb.base_url must be an http(s) URL, got %q", c.TMDB.BaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

// RequireTMDB reports whether automatic original-language resolution can
// run with the current configuration.
func (c *Config) RequireTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/audiosweep/config.toml"
		}
		return errors.New("tmdb.api_key is required for automatic mode. Set TMDB_API_KEY or edit " +
			defaultPath + " (create with 'audiosweep config init')")
	}
	return nil
}
