// Package textutil provides small text formatting helpers shared by the
// CLI display layer: title truncation and human-readable bitrates/sizes.
package textutil

import "fmt"

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// FormatBitrate renders a bits-per-second value as "384 Kbps". Estimated
// values are prefixed with "~" and an absent value (0) renders as "N/A".
func FormatBitrate(bps int64, estimated bool) string {
	if bps <= 0 {
		return "N/A"
	}
	if estimated {
		return fmt.Sprintf("~%d Kbps", bps/1000)
	}
	return fmt.Sprintf("%d Kbps", bps/1000)
}

// FormatSize renders a byte count as megabytes with two decimals, or "N/A"
// when the value is absent (0).
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

// ShortenFilename compresses a long file name for table display, keeping the
// extension visible: "very-long-name[...].mkv".
func ShortenFilename(name, ext string, max int) string {
	runes := []rune(name)
	if max <= 0 || len(runes) <= max {
		return name
	}
	keep := max - len([]rune(ext)) - 5
	if keep < 1 {
		return string(runes[:max])
	}
	return string(runes[:keep]) + "[...]" + ext
}
