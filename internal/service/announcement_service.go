package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService announcement business interface. Creation and edits
// are admin-only; the role check lives in the middleware.
type AnnouncementService interface {
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
	Create(ctx context.Context, authorID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, callerID, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService creates an AnnouncementService instance.
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	announcements, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("listing announcements", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		result = append(result, announcementResponse(&announcements[i]))
	}
	return result, nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("querying announcement", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := announcementResponse(a)
	return &resp, nil
}

func (s *announcementService) Create(ctx context.Context, authorID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		Category: coerce(req.Category, model.AnnouncementCategories, "general"),
		AuthorID: authorID,
	}
	a.CreatedBy = &authorID
	a.UpdatedBy = &authorID

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("creating announcement", zap.Error(err))
		return nil, err
	}

	resp := announcementResponse(a)
	return &resp, nil
}

func (s *announcementService) Update(ctx context.Context, callerID, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("querying announcement", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Message != nil {
		a.Message = *req.Message
	}
	if req.Category != nil {
		a.Category = coerce(*req.Category, model.AnnouncementCategories, "general")
	}
	a.UpdatedBy = &callerID

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("updating announcement", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := announcementResponse(a)
	return &resp, nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Announcement.Delete(ctx, id)
	if err != nil {
		s.logger.Error("deleting announcement", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

// ── helpers ──

func announcementResponse(a *model.Announcement) dto.AnnouncementResponse {
	resp := dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Message:   a.Message,
		Category:  a.Category,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
	if a.Author != nil {
		resp.AuthorName = a.Author.FullName
	}
	return resp
}
