package scheduling

import (
	"testing"
	"time"

	"lifeorg/backend/internal/model"
)

const testSkipWeek = 8

func strPtr(s string) *string { return &s }

// Wednesdays 18:00-20:00 across a winter term.
func testTemplate() *model.ScheduleTemplate {
	return &model.ScheduleTemplate{
		TemplateID: "tpl-1",
		UserID:     "user-1",
		Kind:       model.ScheduleKindStudy,
		Subject:    strPtr("English"),
		Weekday:    3,
		StartTime:  "18:00",
		EndTime:    "20:00",
		StartDate:  date("2026-01-05"), // a Monday
		EndDate:    date("2026-04-26"),
	}
}

func TestExpandMonth_WeekdayAndWindow(t *testing.T) {
	tpl := testTemplate()
	occs := ExpandMonth(tpl, 2026, time.January, testSkipWeek)

	// Wednesdays in January 2026 on/after the 5th: 7, 14, 21, 28.
	if len(occs) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(occs))
	}
	for _, o := range occs {
		if Weekday(o.Date) != tpl.Weekday {
			t.Errorf("occurrence %s is not on weekday %d", o.Date.Format(DateLayout), tpl.Weekday)
		}
		if o.Date.Before(tpl.StartDate) || o.Date.After(tpl.EndDate) {
			t.Errorf("occurrence %s outside validity window", o.Date.Format(DateLayout))
		}
		if o.StartTime != "18:00" || o.EndTime != "20:00" {
			t.Errorf("occurrence lost the template time range: %s-%s", o.StartTime, o.EndTime)
		}
		if o.Subject == nil || *o.Subject != "English" {
			t.Error("occurrence lost the template labels")
		}
	}
	if occs[0].Date.Format(DateLayout) != "2026-01-07" {
		t.Errorf("first occurrence = %s, want 2026-01-07", occs[0].Date.Format(DateLayout))
	}
}

func TestExpandMonth_SkipWeekExcluded(t *testing.T) {
	tpl := testTemplate()

	// Term week 8 runs 2026-02-23..2026-03-01; its Wednesday is 2026-02-25.
	occs := ExpandMonth(tpl, 2026, time.February, testSkipWeek)
	for _, o := range occs {
		if o.WeekNumber == testSkipWeek {
			t.Errorf("occurrence %s falls on the skip week", o.Date.Format(DateLayout))
		}
		if o.Date.Format(DateLayout) == "2026-02-25" {
			t.Error("2026-02-25 (week 8) should have been skipped")
		}
	}
	// February Wednesdays: 4, 11, 18, 25 → three remain after the skip.
	if len(occs) != 3 {
		t.Errorf("expected 3 occurrences in February, got %d", len(occs))
	}
}

func TestExpandMonth_WindowEntirelyOutside(t *testing.T) {
	tpl := testTemplate()
	if occs := ExpandMonth(tpl, 2025, time.June, testSkipWeek); len(occs) != 0 {
		t.Errorf("month before the window should be empty, got %d", len(occs))
	}
	if occs := ExpandMonth(tpl, 2026, time.June, testSkipWeek); len(occs) != 0 {
		t.Errorf("month after the window should be empty, got %d", len(occs))
	}
}

func TestExpandMonth_AscendingOrder(t *testing.T) {
	occs := ExpandMonth(testTemplate(), 2026, time.March, testSkipWeek)
	for i := 1; i < len(occs); i++ {
		if !occs[i-1].Date.Before(occs[i].Date) {
			t.Fatal("occurrences are not in ascending date order")
		}
	}
}

// Per-month expansions across a month boundary must be disjoint and union to
// the expansion over the whole window.
func TestExpandMonth_BoundaryDisjointUnion(t *testing.T) {
	tpl := testTemplate()
	tpl.StartDate = date("2026-01-15")
	tpl.EndDate = date("2026-02-15")

	jan := ExpandMonth(tpl, 2026, time.January, testSkipWeek)
	feb := ExpandMonth(tpl, 2026, time.February, testSkipWeek)

	seen := make(map[string]bool)
	for _, o := range jan {
		seen[o.Date.Format(DateLayout)] = true
	}
	for _, o := range feb {
		key := o.Date.Format(DateLayout)
		if seen[key] {
			t.Errorf("occurrence %s appears in both months", key)
		}
		seen[key] = true
	}

	// Full-window expansion week by week yields the same date set.
	union := make(map[string]bool)
	for ws := WeekWindowOf(tpl.StartDate).Start; !ws.After(tpl.EndDate); ws = ws.AddDate(0, 0, 7) {
		for _, o := range ExpandWeek(tpl, ws, testSkipWeek) {
			union[o.Date.Format(DateLayout)] = true
		}
	}
	if len(union) != len(seen) {
		t.Fatalf("per-month union has %d dates, full window has %d", len(seen), len(union))
	}
	for k := range union {
		if !seen[k] {
			t.Errorf("date %s missing from per-month union", k)
		}
	}
}

func TestExpandWeek(t *testing.T) {
	tpl := testTemplate()
	occs := ExpandWeek(tpl, date("2026-01-12"), testSkipWeek) // week 2
	if len(occs) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occs))
	}
	if occs[0].Date.Format(DateLayout) != "2026-01-14" {
		t.Errorf("occurrence = %s, want 2026-01-14", occs[0].Date.Format(DateLayout))
	}
	if occs[0].WeekNumber != 2 {
		t.Errorf("week number = %d, want 2", occs[0].WeekNumber)
	}

	// The skip week itself expands to nothing.
	if occs := ExpandWeek(tpl, date("2026-02-23"), testSkipWeek); len(occs) != 0 {
		t.Errorf("skip week should yield no occurrences, got %d", len(occs))
	}
}

// The aggregate and the per-entry duration must apply the identical overnight
// rule; a drift between the two is a correctness bug.
func TestTotalMinutes_MatchesPerEntryDurations(t *testing.T) {
	entries := []model.ScheduleEntry{
		{StartTime: "09:00", EndTime: "17:00"}, // 480
		{StartTime: "22:00", EndTime: "06:00"}, // 480 overnight
		{StartTime: "09:00", EndTime: "09:00"}, // 1440 full-day wrap
	}

	want := 0
	for _, e := range entries {
		want += DurationMinutes(e.StartTime, e.EndTime)
	}
	if got := TotalMinutes(entries); got != want {
		t.Errorf("TotalMinutes = %d, per-entry sum = %d", got, want)
	}
	if got := TotalMinutes(entries); got != 2400 {
		t.Errorf("TotalMinutes = %d, want 2400", got)
	}
	if got := TotalMinutes(nil); got != 0 {
		t.Errorf("TotalMinutes(nil) = %d, want 0", got)
	}
}
