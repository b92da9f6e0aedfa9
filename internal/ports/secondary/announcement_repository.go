package secondary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	GetByClub(ctx context.Context, clubID string) ([]entity.Announcement, error)
	Delete(ctx context.Context, id, clubID string) error
	// FeedForUser returns public announcements plus private ones from the
	// clubs the user belongs to, newest first.
	FeedForUser(ctx context.Context, userID int64, myClubsOnly bool) ([]dto.AnnouncementFeedItem, error)
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByClub(ctx context.Context, clubID string) ([]entity.Event, error)
	Delete(ctx context.Context, id, clubID string) error
	// FeedForUser returns future public events plus private ones from the
	// clubs the user belongs to, soonest first.
	FeedForUser(ctx context.Context, userID int64, myClubsOnly bool) ([]dto.EventFeedItem, error)
	// CountUpcomingForUser counts future events across the user's clubs.
	CountUpcomingForUser(ctx context.Context, userID int64) (int64, error)
}
