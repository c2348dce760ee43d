// Package ui holds formatting helpers and the shared lipgloss styles
// used by the text reports and the interactive clean flow.
package ui

import (
	"fmt"
	"math"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count as a human-readable string with one
// decimal place, e.g. "1.5 GB". Zero is special-cased as "0 B".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	const threshold = 1024.0
	b := float64(bytes)
	idx := int(math.Floor(math.Log(b) / math.Log(threshold)))
	if idx > len(sizeUnits)-1 {
		idx = len(sizeUnits) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return fmt.Sprintf("%.1f %s", b/math.Pow(threshold, float64(idx)), sizeUnits[idx])
}

// FormatElapsed renders a duration since some past event as a rough
// "2 days ago" style string.
func FormatElapsed(d time.Duration) string {
	const (
		minute = time.Minute
		hour   = time.Hour
		day    = 24 * hour
		week   = 7 * day
		month  = 30 * day
		year   = 365 * day
	)

	var value int64
	var unit string
	switch {
	case d < minute:
		value, unit = int64(d/time.Second), "second"
	case d < hour:
		value, unit = int64(d/minute), "minute"
	case d < day:
		value, unit = int64(d/hour), "hour"
	case d < week:
		value, unit = int64(d/day), "day"
	case d < month:
		value, unit = int64(d/week), "week"
	case d < year:
		value, unit = int64(d/month), "month"
	default:
		value, unit = int64(d/year), "year"
	}

	plural := "s"
	if value == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d %s%s ago", value, unit, plural)
}
