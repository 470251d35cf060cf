package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lifeorg/backend/config"
	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/internal/scheduling"
)

// ── schedule entry business errors ──

var (
	ErrEntryNotFound    = errors.New("schedule entry not found")
	ErrEntryDateInvalid = errors.New("entry date must be YYYY-MM-DD")
	ErrEntryTooLong     = errors.New("entry exceeds the maximum allowed duration")
)

// Advisory codes attached to schedule writes. Advisories inform; they never
// block the write that triggered them.
const (
	AdvisoryWeeklyLimitExceeded = "WEEKLY_LIMIT_EXCEEDED"
	AdvisoryLowStudyHours       = "LOW_STUDY_HOURS"
)

// ScheduleService concrete entry business interface.
type ScheduleService interface {
	List(ctx context.Context, userID string, req *dto.EntryListRequest) (*dto.EntryListResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, *dto.Advisory, error)
	Delete(ctx context.Context, userID, id string) error
}

type scheduleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService instance.
func NewScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

// List returns the entries matching the filter plus the current week's
// summary for the same kind.
func (s *scheduleService) List(ctx context.Context, userID string, req *dto.EntryListRequest) (*dto.EntryListResponse, error) {
	filter := repository.EntryFilter{Kind: req.Kind}
	if req.From != "" {
		from, err := time.Parse(scheduling.DateLayout, req.From)
		if err != nil {
			return nil, ErrEntryDateInvalid
		}
		filter.From = from
	}
	if req.To != "" {
		to, err := time.Parse(scheduling.DateLayout, req.To)
		if err != nil {
			return nil, ErrEntryDateInvalid
		}
		filter.To = to
	}

	entries, err := s.repo.Entry.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error("listing entries", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, entryResponse(&entries[i]))
	}

	total, win, err := s.weeklyTotal(ctx, userID, req.Kind, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.EntryListResponse{
		Entries: result,
		Weekly: dto.WeeklySummary{
			WeekStart:    win.Start.Format(scheduling.DateLayout),
			WeekEnd:      win.End.Format(scheduling.DateLayout),
			TotalMinutes: total,
			TotalText:    scheduling.FormatDuration(total),
		},
	}, nil
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error) {
	date, err := time.Parse(scheduling.DateLayout, req.EntryDate)
	if err != nil {
		return nil, ErrEntryDateInvalid
	}
	if err := s.checkEntryCap(req.Kind, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	entry := &model.ScheduleEntry{
		UserID:    userID,
		Kind:      req.Kind,
		EntryDate: date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Workplace: optional(req.Workplace),
		Role:      optional(req.Role),
		Subject:   optional(req.Subject),
		Notes:     req.Notes,
	}
	entry.CreatedBy = &userID
	entry.UpdatedBy = &userID

	if err := s.repo.Entry.Create(ctx, entry); err != nil {
		s.logger.Error("creating entry", zap.Error(err))
		return nil, err
	}

	// post-insert weekly total for the week the new entry landed in
	total, win, err := s.weeklyTotal(ctx, userID, entry.Kind, entry.EntryDate)
	if err != nil {
		return nil, err
	}

	return &dto.CreateEntryResponse{
		ID:                 entry.EntryID,
		WeeklyTotalMinutes: total,
		WeeklyTotalText:    scheduling.FormatDuration(total),
		Advisory:           s.advisory(entry.Kind, total, win),
	}, nil
}

// ────────────────────── Update ──────────────────────

// Update rewrites the entry in place (PUT semantics) and re-evaluates the
// weekly advisory for the week it now sits in.
func (s *scheduleService) Update(ctx context.Context, userID, id string, req *dto.UpdateEntryRequest) (*dto.EntryResponse, *dto.Advisory, error) {
	entry, err := s.repo.Entry.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEntryNotFound
		}
		s.logger.Error("querying entry", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}

	date, err := time.Parse(scheduling.DateLayout, req.EntryDate)
	if err != nil {
		return nil, nil, ErrEntryDateInvalid
	}
	if err := s.checkEntryCap(entry.Kind, req.StartTime, req.EndTime); err != nil {
		return nil, nil, err
	}

	entry.EntryDate = date
	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime
	entry.Workplace = optional(req.Workplace)
	entry.Role = optional(req.Role)
	entry.Subject = optional(req.Subject)
	entry.Notes = req.Notes
	entry.UpdatedBy = &userID

	if err := s.repo.Entry.Update(ctx, entry); err != nil {
		s.logger.Error("updating entry", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}

	total, win, err := s.weeklyTotal(ctx, userID, entry.Kind, entry.EntryDate)
	if err != nil {
		return nil, nil, err
	}

	resp := entryResponse(entry)
	return &resp, s.advisory(entry.Kind, total, win), nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.repo.Entry.Delete(ctx, id, userID)
	if err != nil {
		s.logger.Error("deleting entry", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ── helpers ──

// checkEntryCap rejects single entries longer than the per-kind hard cap.
// This is the only schedule validation that blocks a write.
func (s *scheduleService) checkEntryCap(kind, start, end string) error {
	minutes := scheduling.DurationMinutes(start, end)
	max := s.cfg.Schedule.MaxWorkEntryMinutes
	if kind == model.ScheduleKindStudy {
		max = s.cfg.Schedule.MaxStudyEntryMinutes
	}
	if minutes > max {
		return ErrEntryTooLong
	}
	return nil
}

// weeklyTotal sums the duration of the user's entries in the Monday–Sunday
// window containing ref. An empty kind sums both kinds.
func (s *scheduleService) weeklyTotal(ctx context.Context, userID, kind string, ref time.Time) (int, scheduling.WeekWindow, error) {
	win := scheduling.WeekWindowOf(ref)
	var (
		entries []model.ScheduleEntry
		err     error
	)
	if kind == "" {
		entries, err = s.repo.Entry.List(ctx, userID, repository.EntryFilter{From: win.Start, To: win.End})
	} else {
		entries, err = s.repo.Entry.ListInRange(ctx, userID, kind, win.Start, win.End)
	}
	if err != nil {
		s.logger.Error("computing weekly total", zap.Error(err))
		return 0, win, err
	}
	return scheduling.TotalMinutes(entries), win, nil
}

// advisory evaluates the weekly policies. Work weeks above the limit warn;
// study weeks under the target remind. Nil means nothing to say.
func (s *scheduleService) advisory(kind string, total int, win scheduling.WeekWindow) *dto.Advisory {
	adv := &dto.Advisory{
		WeekStart:          win.Start.Format(scheduling.DateLayout),
		WeekEnd:            win.End.Format(scheduling.DateLayout),
		WeeklyTotalMinutes: total,
		WeeklyTotalText:    scheduling.FormatDuration(total),
	}

	switch kind {
	case model.ScheduleKindWork:
		if total > s.cfg.Schedule.MaxWorkWeekMinutes {
			adv.Code = AdvisoryWeeklyLimitExceeded
			adv.Message = fmt.Sprintf(
				"Reminder: You are over %d hours this week (%s).",
				s.cfg.Schedule.MaxWorkWeekMinutes/60,
				scheduling.FormatDuration(total),
			)
			return adv
		}
	case model.ScheduleKindStudy:
		if total < s.cfg.Schedule.LowStudyWeekMinutes {
			adv.Code = AdvisoryLowStudyHours
			adv.Message = fmt.Sprintf(
				"Reminder: Your study hours this week are %s. Try to reach %dh+ for good progress.",
				scheduling.FormatDuration(total),
				s.cfg.Schedule.LowStudyWeekMinutes/60,
			)
			return adv
		}
	}
	return nil
}

func entryResponse(e *model.ScheduleEntry) dto.EntryResponse {
	minutes := scheduling.DurationMinutes(e.StartTime, e.EndTime)
	return dto.EntryResponse{
		ID:              e.EntryID,
		Kind:            e.Kind,
		EntryDate:       e.EntryDate.Format(scheduling.DateLayout),
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Workplace:       e.Workplace,
		Role:            e.Role,
		Subject:         e.Subject,
		Notes:           e.Notes,
		DurationMinutes: minutes,
		DurationText:    scheduling.FormatDuration(minutes),
	}
}

// optional maps an empty form value to a NULL column.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
