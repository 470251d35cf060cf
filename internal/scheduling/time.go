package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesOfDay parses an "HH:MM" (or "HH:MM:SS") value into minutes since
// midnight. Malformed or missing components are coerced to zero; callers
// upstream validate shape where it matters, and this layer never errors.
func MinutesOfDay(t string) int {
	parts := strings.SplitN(t, ":", 3)
	var hh, mm int
	if len(parts) > 0 {
		hh, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		mm, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return hh*60 + mm
}

// DurationMinutes computes the span between two times of day in minutes.
// A non-positive difference is read as crossing midnight, so an entry with
// start == end means a full 24-hour span (1440), not zero. That is the
// intended overnight-shift policy.
func DurationMinutes(start, end string) int {
	s := MinutesOfDay(start)
	e := MinutesOfDay(end)
	diff := e - s
	if diff <= 0 {
		diff = (24*60 - s) + e
	}
	return diff
}

// FormatDuration renders minutes as "{h}h {m}m" with no rounding.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Weekday returns the ISO weekday of a date: 1=Monday … 7=Sunday.
func Weekday(d time.Time) int {
	w := int(d.Weekday()) // Sunday=0 … Saturday=6
	if w == 0 {
		return 7
	}
	return w
}
