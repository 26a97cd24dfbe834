package utils

import (
	"fmt"
	"strings"
)

// FormatByteSize renders a byte count for display using binary (1024-based)
// units rounded to one decimal, e.g. "1.2 MB".
func FormatByteSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FormatConfidence renders a 0-1 confidence value as a percentage.
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.0f%%", confidence*100)
}

// FormatProgress renders a 0-1 ratio as "n/m complete"-style percent text.
func FormatProgress(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Truncate shortens text to max characters, appending an ellipsis when
// anything was cut.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	if max <= 1 {
		return "…"
	}
	return text[:max-1] + "…"
}
