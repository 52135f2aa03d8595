package remux

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"audiosweep/internal/faults"
	"audiosweep/internal/fileutil"
	"audiosweep/internal/logging"
	"audiosweep/internal/plan"
)

// commandRunner executes an external command, returning its combined output
// only through the error. Injected in tests.
type commandRunner func(ctx context.Context, name string, args ...string) error

// statfsFunc reports the free bytes available on the filesystem holding path.
type statfsFunc func(path string) (uint64, error)

// Result reports the outcome of one plan's execution. Err is set when the
// remux failed; the original file is untouched in that case.
type Result struct {
	Path          string
	TracksDeleted int
	BytesSaved    int64
	Err           error
}

// Executor applies approved deletion plans by remuxing each file without its
// deleted audio tracks and atomically swapping the result over the original.
type Executor struct {
	binary string
	logger *slog.Logger
	run    commandRunner
	statfs statfsFunc
}

// NewExecutor constructs an executor that invokes the given ffmpeg binary.
func NewExecutor(binary string, logger *slog.Logger) *Executor {
	return &Executor{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "remux"),
		run:    defaultCommandRunner,
		statfs: freeBytes,
	}
}

// WithCommandRunner injects a custom command runner for tests.
func (e *Executor) WithCommandRunner(r commandRunner) {
	if e != nil && r != nil {
		e.run = r
	}
}

// WithStatfs injects a custom free-space probe for tests.
func (e *Executor) WithStatfs(fn statfsFunc) {
	if e != nil && fn != nil {
		e.statfs = fn
	}
}

// Execute applies a single approved plan. The remux writes to a temporary
// sibling of the original; the original is only replaced after ffmpeg exits
// successfully and the output exists, so a failure at any point leaves the
// file untouched. A plan with no deletions is a no-op marked applied.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) Result {
	result := Result{Path: p.Path, TracksDeleted: len(p.Delete)}
	if !p.HasDeletions() {
		p.Status = plan.StatusApplied
		result.TracksDeleted = 0
		return result
	}

	originalSize, err := fileutil.FileSize(p.Path)
	if err != nil {
		p.Status = plan.StatusFailed
		result.Err = faults.Wrap(faults.ErrRemux, "remux", "stat", "original file unavailable", err)
		return result
	}

	if err := e.checkFreeSpace(p.Path, originalSize); err != nil {
		p.Status = plan.StatusFailed
		result.Err = err
		return result
	}

	tmpPath := fileutil.TempSibling(p.Path, uuid.NewString()[:8])
	args := buildArgs(p, tmpPath)

	e.logger.Debug("executing ffmpeg",
		logging.String(logging.FieldPath, p.Path),
		logging.Int(logging.FieldTracks, len(p.Delete)),
		logging.String("output", filepath.Base(tmpPath)),
	)

	if err := e.run(ctx, e.binary, args...); err != nil {
		_ = os.Remove(tmpPath)
		p.Status = plan.StatusFailed
		result.Err = faults.Wrap(faults.ErrRemux, "remux", "ffmpeg", "remux failed", err)
		return result
	}

	newSize, err := fileutil.FileSize(tmpPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		p.Status = plan.StatusFailed
		result.Err = faults.Wrap(faults.ErrRemux, "remux", "ffmpeg", "no output produced", err)
		return result
	}

	if err := fileutil.Replace(tmpPath, p.Path); err != nil {
		_ = os.Remove(tmpPath)
		p.Status = plan.StatusFailed
		result.Err = faults.Wrap(faults.ErrRemux, "remux", "swap", "could not replace original", err)
		return result
	}

	p.Status = plan.StatusApplied
	result.BytesSaved = originalSize - newSize

	e.logger.Info("tracks deleted",
		logging.String(logging.FieldPath, p.Path),
		logging.Int(logging.FieldTracks, result.TracksDeleted),
		logging.Int64(logging.FieldBytes, result.BytesSaved),
	)
	return result
}

// ExecuteBatch applies approved plans sequentially. A failed plan is
// recorded and the batch continues; only context cancellation stops it.
func (e *Executor) ExecuteBatch(ctx context.Context, plans []*plan.Plan) []Result {
	results := make([]Result, 0, len(plans))
	for _, p := range plans {
		if ctx.Err() != nil {
			break
		}
		if p.Status != plan.StatusApproved {
			continue
		}
		results = append(results, e.Execute(ctx, p))
	}
	return results
}

// checkFreeSpace verifies the target directory can hold a full copy of the
// original. The remux output coexists with the original until the swap.
func (e *Executor) checkFreeSpace(path string, need int64) error {
	free, err := e.statfs(filepath.Dir(path))
	if err != nil {
		// Statfs failure is not worth aborting a remux over.
		e.logger.Warn("free space check unavailable", logging.Error(err))
		return nil
	}
	if free < uint64(need) {
		return faults.Wrap(faults.ErrRemux, "remux", "preflight",
			fmt.Sprintf("need %d bytes free, have %d", need, free), nil)
	}
	return nil
}

// buildArgs assembles the ffmpeg invocation: copy every stream, then carve
// out the deleted audio tracks by their audio-relative position.
func buildArgs(p *plan.Plan, outputPath string) []string {
	args := []string{"-v", "error", "-y", "-i", p.Path, "-map", "0"}
	for _, ref := range p.Delete {
		args = append(args, "-map", fmt.Sprintf("-0:a:%d", ref.Ordinal))
	}
	return append(args, "-c", "copy", outputPath)
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func freeBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}
