package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// AnnouncementService defines the interface for announcement use cases
type AnnouncementService interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	GetByClub(ctx context.Context, clubID string) ([]entity.Announcement, error)
	Delete(ctx context.Context, id, clubID string) error
	FeedForUser(ctx context.Context, userID int64, filter string) ([]dto.AnnouncementFeedItem, error)
}

// EventService defines the interface for event use cases
type EventService interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByClub(ctx context.Context, clubID string) ([]entity.Event, error)
	Delete(ctx context.Context, id, clubID string) error
	FeedForUser(ctx context.Context, userID int64, filter string) ([]dto.EventFeedItem, error)
}
