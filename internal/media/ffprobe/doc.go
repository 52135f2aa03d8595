// Package ffprobe wraps invocation of the ffprobe binary and exposes the
// subset of its JSON output that audio inventory needs.
package ffprobe
