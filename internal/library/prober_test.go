package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"audiosweep/internal/logging"
)

const probeStub = `#!/bin/sh
case "$@" in
*broken*)
	echo "probe exploded" >&2
	exit 1
	;;
esac
cat <<'EOF'
{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264"},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "channels": 2,
     "sample_rate": "48000", "tags": {"language": "eng"}}
  ],
  "format": {"duration": "3600.0"}
}
EOF
`

func writeProbeStub(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffprobe-stub")
	if err := os.WriteFile(path, []byte(probeStub), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestProbeAllCollectsResultsAndErrors(t *testing.T) {
	binary := writeProbeStub(t)
	prober := NewProber(binary, 4, logging.NewNop())

	paths := []string{"/library/good-1.mkv", "/library/broken.mkv", "/library/good-2.mkv"}
	files, probeErrors := prober.ProbeAll(context.Background(), paths)

	if len(files) != 2 {
		t.Fatalf("expected 2 probed files, got %d", len(files))
	}
	// Input order survives the concurrent dispatch.
	if files[0].Path != "/library/good-1.mkv" || files[1].Path != "/library/good-2.mkv" {
		t.Fatalf("unexpected order: %q, %q", files[0].Path, files[1].Path)
	}
	if len(files[0].Tracks) != 1 || files[0].Tracks[0].Language != "eng" {
		t.Fatalf("unexpected tracks: %+v", files[0].Tracks)
	}
	if files[0].Duration != 3600 {
		t.Fatalf("unexpected duration: %v", files[0].Duration)
	}

	if len(probeErrors) != 1 || probeErrors[0].Path != "/library/broken.mkv" {
		t.Fatalf("unexpected probe errors: %+v", probeErrors)
	}
	if probeErrors[0].Message == "" {
		t.Fatal("probe error must carry a message")
	}
}

func TestProbeAllSequentialFallback(t *testing.T) {
	prober := NewProber(writeProbeStub(t), 0, nil)
	files, probeErrors := prober.ProbeAll(context.Background(), []string{"/library/only.mkv"})
	if len(files) != 1 || len(probeErrors) != 0 {
		t.Fatalf("unexpected result: %d files, %d errors", len(files), len(probeErrors))
	}
}
