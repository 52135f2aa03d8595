// Package testsupport holds helpers shared by package tests: canned
// configs, sized files, and executable tool stubs.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"audiosweep/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test"
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.LangCache.Enabled = false
	cfg.LangCache.Path = filepath.Join(base, "languages.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTMDBKey sets the TMDB API key on the test config.
func WithTMDBKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.APIKey = key
	}
}

// WithFFmpegDir pins tool resolution to the given directory.
func WithFFmpegDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.FFmpegDir = dir
	}
}

// WriteFile fills the target path with the requested number of bytes.
// A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// StubTool writes an executable shell script named name into dir and
// returns its path. The script body runs under /bin/sh.
func StubTool(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
