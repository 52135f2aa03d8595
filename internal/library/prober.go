package library

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"audiosweep/internal/faults"
	"audiosweep/internal/logging"
	"audiosweep/internal/media/ffprobe"
	"audiosweep/internal/media/tracks"
)

// ProbeError records a file that could not be inspected. Probe failures are
// collected, never fatal to the batch.
type ProbeError struct {
	Path    string
	Message string
}

// Prober inspects media files concurrently through ffprobe.
type Prober struct {
	binary      string
	concurrency int
	logger      *slog.Logger
}

// NewProber creates a prober that runs at most concurrency inspections at
// once. Zero or negative concurrency means sequential probing.
func NewProber(binary string, concurrency int, logger *slog.Logger) *Prober {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Prober{
		binary:      binary,
		concurrency: concurrency,
		logger:      logging.NewComponentLogger(logger, "prober"),
	}
}

// ProbeAll inspects every path and returns the per-file audio inventories in
// input order, plus one ProbeError per file that failed. Probing is
// side-effect free, so files are dispatched across a bounded worker pool.
func (p *Prober) ProbeAll(ctx context.Context, paths []string) ([]tracks.FileTracks, []ProbeError) {
	results := make([]*tracks.FileTracks, len(paths))

	var mu sync.Mutex
	var probeErrors []ProbeError

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			result, err := ffprobe.Inspect(groupCtx, p.binary, path)
			if err != nil {
				wrapped := faults.Wrap(faults.ErrProbe, "prober", "inspect", path, err)
				p.logger.Debug("probe failed",
					logging.String(logging.FieldPath, path),
					logging.Error(wrapped))
				mu.Lock()
				probeErrors = append(probeErrors, ProbeError{Path: path, Message: err.Error()})
				mu.Unlock()
				return nil
			}
			file := tracks.Extract(result, path)
			results[i] = &file
			return nil
		})
	}
	// Workers never return errors; failures are collected per file.
	_ = group.Wait()

	files := make([]tracks.FileTracks, 0, len(paths))
	for _, file := range results {
		if file != nil {
			files = append(files, *file)
		}
	}
	return files, probeErrors
}
