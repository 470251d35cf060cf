package scheduling

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// WeekWindow is the Monday–Sunday window containing some reference date.
// Both bounds are calendar dates with no time component.
type WeekWindow struct {
	Start time.Time // Monday
	End   time.Time // Sunday
}

// WeekWindowOf resolves the week window containing d, correct across month
// and year boundaries.
func WeekWindowOf(d time.Time) WeekWindow {
	day := truncateDate(d)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	monday := day.AddDate(0, 0, -offset)
	return WeekWindow{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// Contains reports whether date falls inside the window (inclusive).
func (w WeekWindow) Contains(date time.Time) bool {
	d := truncateDate(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// TermWeekNumber is the 1-based count of 7-day blocks since termStart.
// Dates before termStart yield values ≤ 0; callers must cope.
func TermWeekNumber(termStart, date time.Time) int {
	days := int(truncateDate(date).Sub(truncateDate(termStart)).Hours() / 24)
	if days < 0 {
		// floor division for negative day offsets
		return -((-days + 6) / 7) + 1
	}
	return days/7 + 1
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
