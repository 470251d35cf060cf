package scheduling

import (
	"time"

	"lifeorg/backend/internal/model"
)

// Occurrence is one concrete, dated instance generated from a template.
// Occurrences are computed per request and never persisted.
type Occurrence struct {
	TemplateID string
	Kind       string
	Date       time.Time
	Workplace  *string
	Role       *string
	Subject    *string
	StartTime  string
	EndTime    string
	Notes      string
	WeekNumber int // term week relative to the template's own start date
}

// ExpandMonth generates the template's occurrences for one calendar month.
// A template whose validity window misses the month entirely yields an empty
// slice, not an error. The template itself is not validated here; that is
// the write path's job.
func ExpandMonth(t *model.ScheduleTemplate, year int, month time.Month, skipWeek int) []Occurrence {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return expandRange(t, first, last, skipWeek)
}

// ExpandWeek generates the template's occurrences for the 7 days starting at
// weekStart (a Monday by convention; any date works).
func ExpandWeek(t *model.ScheduleTemplate, weekStart time.Time, skipWeek int) []Occurrence {
	start := truncateDate(weekStart)
	return expandRange(t, start, start.AddDate(0, 0, 6), skipWeek)
}

// expandRange walks every date in [from, to] and keeps those that sit inside
// the template's validity window, fall on its weekday, and do not land on the
// skip week. Output is in ascending date order.
func expandRange(t *model.ScheduleTemplate, from, to time.Time, skipWeek int) []Occurrence {
	startBound := truncateDate(t.StartDate)
	endBound := truncateDate(t.EndDate)

	var out []Occurrence
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Before(startBound) || d.After(endBound) {
			continue
		}
		if Weekday(d) != t.Weekday {
			continue
		}
		wk := TermWeekNumber(t.StartDate, d)
		if wk == skipWeek {
			continue
		}
		out = append(out, Occurrence{
			TemplateID: t.TemplateID,
			Kind:       t.Kind,
			Date:       d,
			Workplace:  t.Workplace,
			Role:       t.Role,
			Subject:    t.Subject,
			StartTime:  t.StartTime,
			EndTime:    t.EndTime,
			Notes:      t.Notes,
			WeekNumber: wk,
		})
	}
	return out
}

// TotalMinutes sums entry durations with the same overnight rule as
// DurationMinutes. The weekly aggregation and the per-entry duration must
// never disagree, so they share the one implementation.
func TotalMinutes(entries []model.ScheduleEntry) int {
	total := 0
	for i := range entries {
		total += DurationMinutes(entries[i].StartTime, entries[i].EndTime)
	}
	return total
}
