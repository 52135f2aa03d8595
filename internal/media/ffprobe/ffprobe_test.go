package ffprobe

import (
	"context"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio", Index: 1},
			{CodecType: "subtitle"},
			{CodecType: "audio", Index: 3},
		},
		Format: Format{
			Duration: "123.45",
			Size:     "1000",
		},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	audio := result.AudioStreams()
	if audio[0].Index != 1 || audio[1].Index != 3 {
		t.Fatalf("audio streams out of order: %#v", audio)
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 1000 {
		t.Fatalf("unexpected size: %d", result.SizeBytes())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			Size:     "-1",
		},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
}

func TestStreamHelpers(t *testing.T) {
	stream := Stream{
		CodecName:  "aac",
		Channels:   2,
		SampleRate: "48000",
		BitRate:    "128000",
		Tags:       map[string]string{"language": "eng", "title": " Director Commentary "},
	}
	if stream.BitRateBPS() != 128000 {
		t.Fatalf("unexpected bitrate: %d", stream.BitRateBPS())
	}
	if stream.SampleRateHz() != 48000 {
		t.Fatalf("unexpected sample rate: %d", stream.SampleRateHz())
	}
	if stream.Tag("language") != "eng" {
		t.Fatalf("unexpected language tag: %q", stream.Tag("language"))
	}
	if stream.Tag("title") != "Director Commentary" {
		t.Fatalf("expected trimmed title, got %q", stream.Tag("title"))
	}
	if stream.Tag("missing") != "" {
		t.Fatal("missing tag must be empty")
	}

	empty := Stream{}
	if empty.BitRateBPS() != 0 || empty.SampleRateHz() != 0 || empty.Tag("language") != "" {
		t.Fatal("zero stream must report absent values")
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
