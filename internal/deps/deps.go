// Package deps resolves and verifies the external tools the sweep pipeline
// shells out to: ffprobe for inspection and ffmpeg for the remux itself.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Tool reports the resolution of one external binary.
type Tool struct {
	Name        string
	Description string
	Path        string
	Available   bool
	Detail      string
}

var required = []struct {
	name        string
	description string
}{
	{"ffprobe", "Inspects container streams and formats"},
	{"ffmpeg", "Rewrites containers without deleted audio tracks"},
}

// ResolveTool returns the path to use for the named binary. A non-empty dir
// pins resolution to that directory and never falls back to PATH, so a
// configured install cannot silently shadow a system one.
func ResolveTool(dir, name string) (string, error) {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if dir = strings.TrimSpace(dir); dir != "" {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil {
			return "", fmt.Errorf("%s not found in %s: %w", name, dir, err)
		}
		if !isExecutable(info) {
			return "", fmt.Errorf("%s is not executable", candidate)
		}
		return candidate, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("binary %q not found on PATH: %w", name, err)
	}
	return path, nil
}

// Check resolves every required tool and reports availability. Used by the
// deps command; the pipeline itself resolves lazily via ResolveTool.
func Check(dir string) []Tool {
	results := make([]Tool, 0, len(required))
	for _, req := range required {
		tool := Tool{Name: req.name, Description: req.description}
		path, err := ResolveTool(dir, req.name)
		if err != nil {
			tool.Detail = err.Error()
		} else {
			tool.Path = path
			tool.Available = true
		}
		results = append(results, tool)
	}
	return results
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
