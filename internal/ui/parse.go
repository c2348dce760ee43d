package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseAge parses an age filter like "30d", "2w" or "6M" into a
// duration. Units: m(inutes), h(ours), d(ays), w(eeks), M(onths),
// y(ears). Months are 30 days, years 365.
func ParseAge(input string) (time.Duration, error) {
	if input == "" {
		return 0, fmt.Errorf("age filter cannot be empty")
	}

	numStr, unit := input[:len(input)-1], input[len(input)-1:]
	n, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q in age filter", numStr)
	}

	var mult time.Duration
	switch unit {
	case "m":
		mult = time.Minute
	case "h":
		mult = time.Hour
	case "d":
		mult = 24 * time.Hour
	case "w":
		mult = 7 * 24 * time.Hour
	case "M":
		mult = 30 * 24 * time.Hour
	case "y":
		mult = 365 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("invalid age unit %q: use m, h, d, w, M, or y", unit)
	}

	return time.Duration(n) * mult, nil
}

// ParseSize parses a human size like "50MB", "1.5gb" or "512" (bytes)
// into a byte count. Units are 1024-based.
func ParseSize(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("size cannot be empty")
	}

	upper := strings.ToUpper(s)
	mult := int64(1)
	for _, u := range []struct {
		suffix string
		factor int64
	}{
		{"PB", 1 << 50}, {"TB", 1 << 40}, {"GB", 1 << 30},
		{"MB", 1 << 20}, {"KB", 1 << 10}, {"B", 1},
	} {
		if strings.HasSuffix(upper, u.suffix) {
			mult = u.factor
			upper = strings.TrimSuffix(upper, u.suffix)
			break
		}
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(upper), 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", input)
	}

	return int64(n * float64(mult)), nil
}
