// Package util holds small formatting and arithmetic helpers shared across layers.
package util

import (
	"fmt"
	"time"
)

// FormatBytes formats a byte count for logs, e.g. "512 B" or "1.5 KB".
// Negative counts (unknown size) format as "unknown".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "unknown"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPE"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a duration for logs: "850ms", "45s", "5m10s" or "1h30m".
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}

// TotalPages returns how many pages of size hold total items.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}
