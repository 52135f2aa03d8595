// Package config loads, normalizes, and validates the TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/audiosweep/config.toml, then ./audiosweep.toml. A missing file
// is fine; every field has a default and TMDB_API_KEY is read from the
// environment when the file leaves it blank.
package config
