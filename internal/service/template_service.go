package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"lifeorg/backend/config"
	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
	"lifeorg/backend/internal/scheduling"
)

// ── template module business errors ──

var (
	ErrTemplateNotFound     = errors.New("schedule template not found")
	ErrTemplateDateInvalid  = errors.New("template dates must be YYYY-MM-DD with start_date <= end_date")
	ErrTemplateSubjectEmpty = errors.New("study templates need a subject")
	ErrGenerateTargetNeeded = errors.New("either month or weekStart must be provided")
	ErrGenerateTargetBad    = errors.New("month must be YYYY-MM and weekStart YYYY-MM-DD")
)

// TemplateService recurring template business interface.
type TemplateService interface {
	List(ctx context.Context, userID string, req *dto.TemplateListRequest) ([]dto.TemplateResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	Delete(ctx context.Context, userID, id string) error
	Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
}

type templateService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService creates a TemplateService instance.
func NewTemplateService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *templateService) List(ctx context.Context, userID string, req *dto.TemplateListRequest) ([]dto.TemplateResponse, error) {
	templates, err := s.repo.Template.List(ctx, userID, req.Kind)
	if err != nil {
		s.logger.Error("listing templates", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		result = append(result, templateResponse(&templates[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *templateService) Create(ctx context.Context, userID string, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	startDate, err := time.Parse(scheduling.DateLayout, req.StartDate)
	if err != nil {
		return nil, ErrTemplateDateInvalid
	}
	endDate, err := time.Parse(scheduling.DateLayout, req.EndDate)
	if err != nil {
		return nil, ErrTemplateDateInvalid
	}
	if endDate.Before(startDate) {
		return nil, ErrTemplateDateInvalid
	}
	if req.Kind == model.ScheduleKindStudy && req.Subject == "" {
		return nil, ErrTemplateSubjectEmpty
	}

	t := &model.ScheduleTemplate{
		UserID:    userID,
		Kind:      req.Kind,
		Workplace: optional(req.Workplace),
		Role:      optional(req.Role),
		Subject:   optional(req.Subject),
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	}
	t.CreatedBy = &userID
	t.UpdatedBy = &userID

	if err := s.repo.Template.Create(ctx, t); err != nil {
		s.logger.Error("creating template", zap.Error(err))
		return nil, err
	}

	resp := templateResponse(t)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *templateService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.repo.Template.Delete(ctx, id, userID)
	if err != nil {
		s.logger.Error("deleting template", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// ────────────────────── Generate ──────────────────────

// Generate expands the user's templates into dated occurrences for one
// calendar month or one week. Nothing is persisted; the same request always
// yields the same events.
func (s *templateService) Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if req.Month == "" && req.WeekStart == "" {
		return nil, ErrGenerateTargetNeeded
	}
	if req.Month != "" && req.WeekStart != "" {
		return nil, ErrGenerateTargetBad
	}

	templates, err := s.repo.Template.List(ctx, userID, req.Kind)
	if err != nil {
		s.logger.Error("listing templates", zap.Error(err))
		return nil, err
	}

	skipWeek := s.cfg.Schedule.SkipWeek
	var occurrences []scheduling.Occurrence
	resp := &dto.GenerateResponse{}

	switch {
	case req.Month != "":
		monthStart, err := time.Parse("2006-01", req.Month)
		if err != nil {
			return nil, ErrGenerateTargetBad
		}
		resp.Month = req.Month
		for i := range templates {
			occurrences = append(occurrences,
				scheduling.ExpandMonth(&templates[i], monthStart.Year(), monthStart.Month(), skipWeek)...)
		}
	default:
		weekStart, err := time.Parse(scheduling.DateLayout, req.WeekStart)
		if err != nil {
			return nil, ErrGenerateTargetBad
		}
		resp.WeekStart = req.WeekStart
		for i := range templates {
			occurrences = append(occurrences,
				scheduling.ExpandWeek(&templates[i], weekStart, skipWeek)...)
		}
	}

	// merge per-template streams into one calendar ordering
	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].Date.Equal(occurrences[j].Date) {
			return occurrences[i].Date.Before(occurrences[j].Date)
		}
		return occurrences[i].StartTime < occurrences[j].StartTime
	})

	events := make([]dto.OccurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		events = append(events, dto.OccurrenceResponse{
			Type:       "template",
			TemplateID: o.TemplateID,
			Kind:       o.Kind,
			Date:       o.Date.Format(scheduling.DateLayout),
			Workplace:  o.Workplace,
			Role:       o.Role,
			Subject:    o.Subject,
			StartTime:  o.StartTime,
			EndTime:    o.EndTime,
			Notes:      o.Notes,
			WeekNumber: o.WeekNumber,
		})
	}
	resp.Events = events
	return resp, nil
}

// ── helpers ──

func templateResponse(t *model.ScheduleTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:        t.TemplateID,
		Kind:      t.Kind,
		Workplace: t.Workplace,
		Role:      t.Role,
		Subject:   t.Subject,
		Weekday:   t.Weekday,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		StartDate: t.StartDate.Format(scheduling.DateLayout),
		EndDate:   t.EndDate.Format(scheduling.DateLayout),
		Notes:     t.Notes,
	}
}
