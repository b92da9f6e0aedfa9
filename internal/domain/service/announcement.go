package service

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/secondary"
)

type AnnouncementService struct {
	repo secondary.AnnouncementRepository
}

func NewAnnouncementService(storage secondary.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{
		repo: storage,
	}
}

func (s *AnnouncementService) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	if announcement.Visibility == "" {
		announcement.Visibility = entity.VisibilityPublic
	}
	return s.repo.Create(ctx, announcement)
}

func (s *AnnouncementService) GetByClub(ctx context.Context, clubID string) ([]entity.Announcement, error) {
	return s.repo.GetByClub(ctx, clubID)
}

func (s *AnnouncementService) Delete(ctx context.Context, id, clubID string) error {
	return s.repo.Delete(ctx, id, clubID)
}

func (s *AnnouncementService) FeedForUser(ctx context.Context, userID int64, filter string) ([]dto.AnnouncementFeedItem, error) {
	return s.repo.FeedForUser(ctx, userID, filter == FilterMyClubs)
}
