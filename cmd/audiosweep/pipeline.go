package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"audiosweep/internal/config"
	"audiosweep/internal/deps"
	"audiosweep/internal/identification"
	"audiosweep/internal/identification/tmdb"
	"audiosweep/internal/langcache"
	"audiosweep/internal/library"
	"audiosweep/internal/logging"
	"audiosweep/internal/media/tracks"
	"audiosweep/internal/remux"
)

const lockFileName = ".audiosweep.lock"

// acquireLock takes an exclusive advisory lock in the library root so two
// destructive runs cannot remux the same files concurrently. The caller must
// Unlock when the run finishes.
func acquireLock(root string) (*flock.Flock, error) {
	root, err := config.ExpandPath(root)
	if err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(root, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another audiosweep run holds the lock on %s", root)
	}
	return lock, nil
}

// probeLibrary scans root for media containers and probes them in parallel.
func probeLibrary(ctx context.Context, cfg *config.Config, logger *slog.Logger, root string) ([]tracks.FileTracks, []library.ProbeError, error) {
	root, err := config.ExpandPath(root)
	if err != nil {
		return nil, nil, err
	}

	ffprobe, err := deps.ResolveTool(cfg.Paths.FFmpegDir, "ffprobe")
	if err != nil {
		return nil, nil, err
	}

	paths, err := library.Scan(root, cfg.Scan.Extensions)
	if err != nil {
		return nil, nil, err
	}

	prober := library.NewProber(ffprobe, cfg.Scan.Concurrency, logger)
	files, failures := prober.ProbeAll(ctx, paths)
	return files, failures, nil
}

// newResolver assembles the original-language resolver: TMDB client plus the
// optional persistent cache. The key is validated up front so a bad key
// aborts the run instead of leaving every file silently unresolved. The
// returned closer is nil when the cache is disabled.
func newResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*identification.Resolver, func() error, error) {
	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, nil, err
	}
	if err := client.ValidateKey(ctx); err != nil {
		return nil, nil, err
	}

	var store *langcache.Store
	var closer func() error
	if cfg.LangCache.Enabled {
		store, err = langcache.Open(cfg.LangCache.Path)
		if err != nil {
			// A broken cache degrades to direct lookups.
			logger.Warn("language cache unavailable", logging.Error(err))
		} else {
			closer = store.Close
		}
	}

	return identification.NewResolver(client, store, logger), closer, nil
}

// newExecutor resolves ffmpeg and builds the remux executor.
func newExecutor(cfg *config.Config, logger *slog.Logger) (*remux.Executor, error) {
	ffmpeg, err := deps.ResolveTool(cfg.Paths.FFmpegDir, "ffmpeg")
	if err != nil {
		return nil, err
	}
	return remux.NewExecutor(ffmpeg, logger), nil
}
