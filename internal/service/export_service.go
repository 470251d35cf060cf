package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lifeorg/backend/config"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/internal/scheduling"
)

// ── export module business errors ──

var (
	ErrExportMonthInvalid = errors.New("month must be YYYY-MM")
	ErrExportWeekInvalid  = errors.New("weekStart must be YYYY-MM-DD")
	ErrExportGenerateFail = errors.New("generating export file failed")
)

// ExportService serializes a user's schedule for external tools.
//
// Both exports return a buffer plus a suggested filename; the handler sets
// the HTTP headers and streams the bytes.
type ExportService interface {
	// CalendarICS renders one calendar month as iCalendar: the persisted
	// entries plus the occurrences the user's templates generate.
	CalendarICS(ctx context.Context, userID, month, kind string) (*bytes.Buffer, string, error)
	// WeekXLSX renders one Monday-anchored week of entries as a spreadsheet.
	WeekXLSX(ctx context.Context, userID, weekStart string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── CalendarICS ──────────────────────

func (s *exportService) CalendarICS(ctx context.Context, userID, month, kind string) (*bytes.Buffer, string, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, "", ErrExportMonthInvalid
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	entries, err := s.repo.Entry.List(ctx, userID, repository.EntryFilter{
		Kind: kind,
		From: monthStart,
		To:   monthEnd,
	})
	if err != nil {
		s.logger.Error("listing entries", zap.Error(err))
		return nil, "", err
	}

	templates, err := s.repo.Template.List(ctx, userID, kind)
	if err != nil {
		s.logger.Error("listing templates", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//lifeorg//schedule//EN")

	now := time.Now().UTC()
	for i := range entries {
		e := &entries[i]
		evt := cal.AddEvent(fmt.Sprintf("entry-%s@lifeorg", e.EntryID))
		evt.SetDtStampTime(now)
		start, end := eventTimes(e.EntryDate, e.StartTime, e.EndTime)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(entrySummary(e.Kind, e.Workplace, e.Role, e.Subject))
		if e.Notes != "" {
			evt.SetDescription(e.Notes)
		}
	}

	skipWeek := s.cfg.Schedule.SkipWeek
	for i := range templates {
		t := &templates[i]
		for _, o := range scheduling.ExpandMonth(t, monthStart.Year(), monthStart.Month(), skipWeek) {
			evt := cal.AddEvent(fmt.Sprintf("tpl-%s-%s@lifeorg",
				o.TemplateID, o.Date.Format(scheduling.DateLayout)))
			evt.SetDtStampTime(now)
			start, end := eventTimes(o.Date, o.StartTime, o.EndTime)
			evt.SetStartAt(start)
			evt.SetEndAt(end)
			evt.SetSummary(entrySummary(o.Kind, o.Workplace, o.Role, o.Subject))
			if o.Notes != "" {
				evt.SetDescription(o.Notes)
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("schedule_%s.ics", month)
	return buf, filename, nil
}

// ────────────────────── WeekXLSX ──────────────────────

func (s *exportService) WeekXLSX(ctx context.Context, userID, weekStart string) (*bytes.Buffer, string, error) {
	anchor, err := time.Parse(scheduling.DateLayout, weekStart)
	if err != nil {
		return nil, "", ErrExportWeekInvalid
	}
	win := scheduling.WeekWindowOf(anchor)

	entries, err := s.repo.Entry.List(ctx, userID, repository.EntryFilter{
		From: win.Start,
		To:   win.End,
	})
	if err != nil {
		s.logger.Error("listing entries", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Week"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 28)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := fmt.Sprintf("Week of %s", win.Start.Format(scheduling.DateLayout))
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"Day", "Date", "Kind", "What", "Time", "Duration"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
	}

	row := 3
	workTotal, studyTotal := 0, 0
	for i := range entries {
		e := &entries[i]
		minutes := scheduling.DurationMinutes(e.StartTime, e.EndTime)
		if e.Kind == model.ScheduleKindWork {
			workTotal += minutes
		} else {
			studyTotal += minutes
		}

		f.SetCellValue(sheetName, cell("A", row), e.EntryDate.Format("Monday"))
		f.SetCellValue(sheetName, cell("B", row), e.EntryDate.Format(scheduling.DateLayout))
		f.SetCellValue(sheetName, cell("C", row), e.Kind)
		f.SetCellValue(sheetName, cell("D", row), entrySummary(e.Kind, e.Workplace, e.Role, e.Subject))
		f.SetCellValue(sheetName, cell("E", row), fmt.Sprintf("%s-%s", e.StartTime, e.EndTime))
		f.SetCellValue(sheetName, cell("F", row), scheduling.FormatDuration(minutes))
		row++
	}

	row++
	f.SetCellValue(sheetName, cell("A", row), "Work total")
	f.SetCellValue(sheetName, cell("B", row), scheduling.FormatDuration(workTotal))
	row++
	f.SetCellValue(sheetName, cell("A", row), "Study total")
	f.SetCellValue(sheetName, cell("B", row), scheduling.FormatDuration(studyTotal))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing spreadsheet", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("week_%s.xlsx", win.Start.Format(scheduling.DateLayout))
	return buf, filename, nil
}

// ── helpers ──

// eventTimes resolves an entry's wall-clock span on its date. An end at or
// before the start rolls into the next day, matching the duration rule.
func eventTimes(date time.Time, startTime, endTime string) (time.Time, time.Time) {
	start := date.Add(time.Duration(scheduling.MinutesOfDay(startTime)) * time.Minute)
	end := date.Add(time.Duration(scheduling.MinutesOfDay(endTime)) * time.Minute)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// entrySummary builds the event title from whichever labels are present.
func entrySummary(kind string, workplace, role, subject *string) string {
	if kind == model.ScheduleKindStudy {
		if subject != nil && *subject != "" {
			return "Study: " + *subject
		}
		return "Study"
	}
	switch {
	case workplace != nil && *workplace != "" && role != nil && *role != "":
		return fmt.Sprintf("Work: %s (%s)", *workplace, *role)
	case workplace != nil && *workplace != "":
		return "Work: " + *workplace
	default:
		return "Work"
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
