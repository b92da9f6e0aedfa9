package service

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/secondary"
)

// FilterMyClubs restricts a feed to the clubs the student has joined.
const FilterMyClubs = "my-clubs"

type EventService struct {
	repo secondary.EventRepository
}

func NewEventService(storage secondary.EventRepository) *EventService {
	return &EventService{
		repo: storage,
	}
}

func (s *EventService) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if event.Visibility == "" {
		event.Visibility = entity.VisibilityPublic
	}
	return s.repo.Create(ctx, event)
}

func (s *EventService) GetByClub(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.repo.GetByClub(ctx, clubID)
}

func (s *EventService) Delete(ctx context.Context, id, clubID string) error {
	return s.repo.Delete(ctx, id, clubID)
}

func (s *EventService) FeedForUser(ctx context.Context, userID int64, filter string) ([]dto.EventFeedItem, error) {
	return s.repo.FeedForUser(ctx, userID, filter == FilterMyClubs)
}
