package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPx formats a pixel length as a CSS value, e.g. "48px".
func FormatPx(px int) string {
	return fmt.Sprintf("%dpx", px)
}

// ParsePx parses a CSS pixel value. Bare numbers are accepted.
func ParsePx(value string) (int, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, "px")
	if value == "" {
		return 0, fmt.Errorf("empty pixel value")
	}
	px, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel value %q: %w", value, err)
	}
	return px, nil
}

// FormatSeconds formats a duration the way animation delays are written,
// e.g. "0s", "0.2s", "1.4s".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// ParseSeconds is the inverse of FormatSeconds. Empty input is a zero delay.
func ParseSeconds(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: %w", value, err)
	}
	return d, nil
}

// PxToCells converts pixels to terminal cells, rounding up so content is
// never occluded by a partially covered row.
func PxToCells(px, cellPx int) int {
	if px <= 0 || cellPx <= 0 {
		return 0
	}
	return (px + cellPx - 1) / cellPx
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
