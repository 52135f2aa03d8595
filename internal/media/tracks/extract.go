package tracks

import (
	"strings"

	"audiosweep/internal/media/ffprobe"
	"audiosweep/internal/textutil"
)

const (
	// UnknownLanguage is the placeholder used when a stream carries no
	// language tag.
	UnknownLanguage = "unknown"

	maxTitleLength = 40
)

// AudioTrack describes one audio stream within one media file.
//
// StreamIndex is the container-global index as reported by the probe.
// Ordinal is the track's 0-based position among the file's audio streams;
// it is the number shown to users (1-based) and the number the remux
// directive addresses, so the two can never drift apart.
type AudioTrack struct {
	Path        string
	StreamIndex int
	Ordinal     int
	Language    string
	Codec       string
	Channels    int
	SampleRate  int
	// BitRate is in bits per second; 0 means neither declared nor estimable.
	BitRate int64
	// Estimated marks BitRate as the channels×sample_rate approximation.
	Estimated bool
	Title     string
	// SizeBytes is the estimated payload size; 0 when BitRate is absent.
	SizeBytes int64
}

// FileTracks holds the probed audio inventory of a single file. The track
// list reflects on-disk state at probe time and is never mutated afterwards.
type FileTracks struct {
	Path     string
	Duration float64
	Tracks   []AudioTrack
}

// Extract normalizes a probe result into the file's audio track inventory,
// preserving probe order.
func Extract(result ffprobe.Result, path string) FileTracks {
	duration := result.DurationSeconds()
	audio := result.AudioStreams()

	file := FileTracks{
		Path:     path,
		Duration: duration,
		Tracks:   make([]AudioTrack, 0, len(audio)),
	}
	for ordinal, stream := range audio {
		track := AudioTrack{
			Path:        path,
			StreamIndex: stream.Index,
			Ordinal:     ordinal,
			Language:    normalizeLanguage(stream.Tag("language")),
			Codec:       stream.CodecName,
			Channels:    stream.Channels,
			SampleRate:  stream.SampleRateHz(),
			Title:       textutil.Truncate(stream.Tag("title"), maxTitleLength),
		}
		track.BitRate, track.Estimated = resolveBitRate(stream)
		if track.BitRate > 0 && duration > 0 {
			track.SizeBytes = int64(float64(track.BitRate) * duration / 8)
		}
		file.Tracks = append(file.Tracks, track)
	}
	return file
}

func normalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return UnknownLanguage
	}
	return tag
}

// resolveBitRate prefers the declared stream bitrate. AAC streams without a
// declared value get the channels×sample_rate approximation; anything else
// stays absent.
func resolveBitRate(stream ffprobe.Stream) (int64, bool) {
	if declared := stream.BitRateBPS(); declared > 0 {
		return declared, false
	}
	if strings.EqualFold(stream.CodecName, "aac") {
		estimate := int64(stream.Channels) * int64(stream.SampleRateHz())
		if estimate > 0 {
			return estimate, true
		}
	}
	return 0, false
}
