package tracks

import (
	"strings"
	"testing"

	"audiosweep/internal/media/ffprobe"
)

func probeFixture() ffprobe.Result {
	return ffprobe.Result{
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "video", CodecName: "h264"},
			{
				Index: 1, CodecType: "audio", CodecName: "ac3", Channels: 6,
				SampleRate: "48000", BitRate: "384000",
				Tags: map[string]string{"language": "ENG", "title": "Surround"},
			},
			{
				Index: 2, CodecType: "audio", CodecName: "aac", Channels: 2,
				SampleRate: "48000",
			},
			{
				Index: 3, CodecType: "audio", CodecName: "dts", Channels: 6,
				SampleRate: "48000",
				Tags:       map[string]string{"language": "fre"},
			},
		},
		Format: ffprobe.Format{Duration: "3600.0"},
	}
}

func TestExtractOrderAndOrdinals(t *testing.T) {
	file := Extract(probeFixture(), "/library/movie.mkv")
	if file.Path != "/library/movie.mkv" {
		t.Fatalf("unexpected path: %q", file.Path)
	}
	if len(file.Tracks) != 3 {
		t.Fatalf("expected 3 audio tracks, got %d", len(file.Tracks))
	}
	for i, track := range file.Tracks {
		if track.Ordinal != i {
			t.Fatalf("track %d has ordinal %d", i, track.Ordinal)
		}
	}
	if file.Tracks[0].StreamIndex != 1 || file.Tracks[1].StreamIndex != 2 || file.Tracks[2].StreamIndex != 3 {
		t.Fatalf("stream indices not preserved: %#v", file.Tracks)
	}
}

func TestExtractLanguageDefaults(t *testing.T) {
	file := Extract(probeFixture(), "/library/movie.mkv")
	if file.Tracks[0].Language != "eng" {
		t.Fatalf("expected lowercased language, got %q", file.Tracks[0].Language)
	}
	if file.Tracks[1].Language != UnknownLanguage {
		t.Fatalf("expected unknown language, got %q", file.Tracks[1].Language)
	}
}

func TestExtractDeclaredBitrateAndSize(t *testing.T) {
	file := Extract(probeFixture(), "/library/movie.mkv")
	track := file.Tracks[0]
	if track.BitRate != 384000 || track.Estimated {
		t.Fatalf("expected declared bitrate 384000, got %d (estimated=%v)", track.BitRate, track.Estimated)
	}
	if track.SizeBytes != 384000*3600/8 {
		t.Fatalf("unexpected size: %d", track.SizeBytes)
	}
}

func TestExtractAACBitrateEstimate(t *testing.T) {
	file := Extract(probeFixture(), "/library/movie.mkv")
	track := file.Tracks[1]
	if track.BitRate != 96000 || !track.Estimated {
		t.Fatalf("expected estimated bitrate 96000, got %d (estimated=%v)", track.BitRate, track.Estimated)
	}
	// 96000 bps over an hour is 43.2 MB of payload.
	if track.SizeBytes != 96000*3600/8 {
		t.Fatalf("unexpected estimated size: %d", track.SizeBytes)
	}
}

func TestExtractNonAACWithoutBitrateIsAbsent(t *testing.T) {
	file := Extract(probeFixture(), "/library/movie.mkv")
	track := file.Tracks[2]
	if track.BitRate != 0 || track.Estimated {
		t.Fatalf("expected absent bitrate, got %d", track.BitRate)
	}
	if track.SizeBytes != 0 {
		t.Fatalf("expected absent size, got %d", track.SizeBytes)
	}
}

func TestExtractTruncatesTitle(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{
			{
				Index: 0, CodecType: "audio", CodecName: "aac", Channels: 2, SampleRate: "44100",
				Tags: map[string]string{"title": strings.Repeat("x", 60)},
			},
		},
		Format: ffprobe.Format{Duration: "10"},
	}
	file := Extract(result, "/a.mkv")
	if len(file.Tracks[0].Title) != 40 {
		t.Fatalf("expected title truncated to 40, got %d", len(file.Tracks[0].Title))
	}
}

func TestExtractNoAudio(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{{Index: 0, CodecType: "video"}},
		Format:  ffprobe.Format{Duration: "100"},
	}
	file := Extract(result, "/video-only.mkv")
	if len(file.Tracks) != 0 {
		t.Fatalf("expected no tracks, got %d", len(file.Tracks))
	}
}
