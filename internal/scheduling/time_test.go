package scheduling

import (
	"testing"
	"time"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"23:59", 1439},
		{"09:30:00", 570}, // seconds component ignored
	}
	for _, c := range cases {
		if got := MinutesOfDay(c.in); got != c.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMinutesOfDay_LenientParsing(t *testing.T) {
	// Malformed components coerce to zero by policy; no error path exists.
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"9", 540},      // missing minutes → 0
		{"xx:30", 30},   // bad hour → 0
		{"10:xx", 600},  // bad minute → 0
		{"10:", 600},    // empty minute → 0
	}
	for _, c := range cases {
		if got := MinutesOfDay(c.in); got != c.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	if got := DurationMinutes("09:00", "17:00"); got != 480 {
		t.Errorf("09:00-17:00 = %d, want 480", got)
	}
	if got := DurationMinutes("22:00", "06:00"); got != 480 {
		t.Errorf("overnight 22:00-06:00 = %d, want 480", got)
	}
	// start == end is a full 24h span, the documented overnight-wrap edge.
	if got := DurationMinutes("09:00", "09:00"); got != 1440 {
		t.Errorf("09:00-09:00 = %d, want 1440", got)
	}
	if got := DurationMinutes("23:30", "00:15"); got != 45 {
		t.Errorf("23:30-00:15 = %d, want 45", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0h 0m"},
		{45, "0h 45m"},
		{480, "8h 0m"},
		{1450, "24h 10m"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Weekday(monday); got != 1 {
		t.Errorf("2024-01-01 (Monday) = %d, want 1", got)
	}
	sunday := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := Weekday(sunday); got != 7 {
		t.Errorf("2023-12-31 (Sunday) = %d, want 7", got)
	}
}
