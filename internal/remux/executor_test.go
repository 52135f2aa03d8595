package remux

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiosweep/internal/faults"
	"audiosweep/internal/plan"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func approvedPlan(path string, ordinals ...int) *plan.Plan {
	p := &plan.Plan{Path: path, Status: plan.StatusApproved}
	for _, ordinal := range ordinals {
		p.Delete = append(p.Delete, plan.TrackRef{Ordinal: ordinal, Language: "fre"})
	}
	p.Keep = append(p.Keep, plan.TrackRef{Ordinal: 0, Language: "eng"})
	return p
}

func TestExecuteRemuxesAndSwaps(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "Movie.mkv")
	writeFile(t, original, 1000)

	var gotArgs []string
	exec := NewExecutor("ffmpeg", nil)
	exec.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		gotArgs = append([]string{name}, args...)
		writeFile(t, args[len(args)-1], 600)
		return nil
	})

	p := approvedPlan(original, 1, 2)
	result := exec.Execute(context.Background(), p)
	if result.Err != nil {
		t.Fatalf("execute: %v", result.Err)
	}
	if p.Status != plan.StatusApplied {
		t.Fatalf("expected applied, got %s", p.Status)
	}
	if result.TracksDeleted != 2 || result.BytesSaved != 400 {
		t.Fatalf("unexpected result: %+v", result)
	}

	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"ffmpeg", "-i " + original, "-map 0 ", "-map -0:a:1", "-map -0:a:2", "-c copy"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %q", want, joined)
		}
	}

	info, err := os.Stat(original)
	if err != nil {
		t.Fatalf("stat original: %v", err)
	}
	if info.Size() != 600 {
		t.Fatalf("original not replaced: %d bytes", info.Size())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestExecuteEmptyDeleteSetIsNoOp(t *testing.T) {
	exec := NewExecutor("ffmpeg", nil)
	exec.WithCommandRunner(func(context.Context, string, ...string) error {
		t.Fatal("ffmpeg must not run for an empty delete set")
		return nil
	})

	p := &plan.Plan{Path: "/nonexistent.mkv", Status: plan.StatusApproved,
		Keep: []plan.TrackRef{{Ordinal: 0, Language: "eng"}}}
	result := exec.Execute(context.Background(), p)
	if result.Err != nil || p.Status != plan.StatusApplied {
		t.Fatalf("no-op plan should apply cleanly: %+v (%s)", result, p.Status)
	}
}

func TestExecuteFailurePreservesOriginal(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "Movie.mkv")
	writeFile(t, original, 1000)

	exec := NewExecutor("ffmpeg", nil)
	exec.WithCommandRunner(func(_ context.Context, _ string, args ...string) error {
		// Partial output before the failure must be cleaned up.
		writeFile(t, args[len(args)-1], 50)
		return errors.New("invalid data found when processing input")
	})

	p := approvedPlan(original, 1)
	result := exec.Execute(context.Background(), p)
	if !errors.Is(result.Err, faults.ErrRemux) {
		t.Fatalf("expected remux error, got %v", result.Err)
	}
	if p.Status != plan.StatusFailed {
		t.Fatalf("expected failed, got %s", p.Status)
	}

	info, err := os.Stat(original)
	if err != nil || info.Size() != 1000 {
		t.Fatalf("original damaged: %v (%d bytes)", err, info.Size())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestExecuteRefusesWhenDiskIsFull(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "Movie.mkv")
	writeFile(t, original, 1000)

	exec := NewExecutor("ffmpeg", nil)
	exec.WithCommandRunner(func(context.Context, string, ...string) error {
		t.Fatal("ffmpeg must not run without free space")
		return nil
	})
	exec.WithStatfs(func(string) (uint64, error) { return 999, nil })

	result := exec.Execute(context.Background(), approvedPlan(original, 1))
	if !errors.Is(result.Err, faults.ErrRemux) {
		t.Fatalf("expected preflight failure, got %v", result.Err)
	}
}

func TestExecuteBatchContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "Bad.mkv")
	good := filepath.Join(dir, "Good.mkv")
	writeFile(t, bad, 100)
	writeFile(t, good, 100)

	exec := NewExecutor("ffmpeg", nil)
	exec.WithCommandRunner(func(_ context.Context, _ string, args ...string) error {
		output := args[len(args)-1]
		if strings.Contains(output, "Bad") {
			return errors.New("boom")
		}
		writeFile(t, output, 40)
		return nil
	})

	plans := []*plan.Plan{
		approvedPlan(bad, 1),
		{Path: "skipped.mkv", Status: plan.StatusSkipped},
		approvedPlan(good, 1),
	}
	results := exec.ExecuteBatch(context.Background(), plans)
	if len(results) != 2 {
		t.Fatalf("expected 2 results (skipped plan excluded), got %d", len(results))
	}
	if results[0].Err == nil || results[1].Err != nil {
		t.Fatalf("unexpected outcomes: %+v", results)
	}
	if results[1].BytesSaved != 60 {
		t.Fatalf("unexpected savings: %+v", results[1])
	}
}
