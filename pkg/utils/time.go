package utils

import (
	"fmt"
	"time"
)

// FormatElapsed renders a wall-clock duration as hours, minutes and seconds,
// e.g. "1h03m27s". Sub-second precision is dropped.
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total - hours*3600 - minutes*60
	return fmt.Sprintf("%dh%02dm%02ds", hours, minutes, seconds)
}

// MinDuration returns the smaller of two durations
func MinDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
