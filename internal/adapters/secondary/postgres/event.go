package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (s *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(event).Error
	return event, err
}

func (s *EventRepository) GetByClub(ctx context.Context, clubID string) ([]entity.Event, error) {
	events := make([]entity.Event, 0)
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("start_time").
		Find(&events).Error
	return events, err
}

func (s *EventRepository) Delete(ctx context.Context, id, clubID string) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND club_id = ?", id, clubID).
		Delete(&entity.Event{}).Error
}

// FeedForUser returns future public events plus private ones from the clubs
// the user belongs to, soonest first.
func (s *EventRepository) FeedForUser(ctx context.Context, userID int64, myClubsOnly bool) ([]dto.EventFeedItem, error) {
	type rawItem struct {
		ID          string            `gorm:"column:id"`
		ClubID      string            `gorm:"column:club_id"`
		ClubName    string            `gorm:"column:club_name"`
		Name        string            `gorm:"column:name"`
		Description string            `gorm:"column:description"`
		Visibility  entity.Visibility `gorm:"column:visibility"`
		IsMember    bool              `gorm:"column:is_member"`
		StartTime   time.Time         `gorm:"column:start_time"`
		Venue       string            `gorm:"column:venue"`
	}

	query := s.db.WithContext(ctx).
		Table("events").
		Select(`events.id, events.club_id, clubs.name AS club_name, events.name,
			events.description, events.visibility, events.start_time, events.venue,
			(memberships.user_id IS NOT NULL) AS is_member`).
		Joins("JOIN clubs ON clubs.id = events.club_id").
		Joins("LEFT JOIN memberships ON memberships.club_id = events.club_id AND memberships.user_id = ?", userID).
		Where("events.start_time > ?", time.Now()).
		Order("events.start_time")

	if myClubsOnly {
		query = query.Where("memberships.user_id IS NOT NULL")
	} else {
		query = query.Where("events.visibility = ? OR memberships.user_id IS NOT NULL", entity.VisibilityPublic)
	}

	var rawResult []rawItem
	if err := query.Scan(&rawResult).Error; err != nil {
		return nil, err
	}

	result := make([]dto.EventFeedItem, len(rawResult))
	for i, raw := range rawResult {
		source := dto.SourceOther
		if raw.IsMember {
			source = dto.SourceMyClub
		}
		result[i] = dto.EventFeedItem{
			ID:          raw.ID,
			ClubID:      raw.ClubID,
			ClubName:    raw.ClubName,
			Name:        raw.Name,
			Description: raw.Description,
			Visibility:  raw.Visibility,
			Source:      source,
			StartTime:   raw.StartTime,
			Venue:       raw.Venue,
		}
	}

	return result, nil
}

// CountUpcomingForUser counts future events across the user's joined clubs.
func (s *EventRepository) CountUpcomingForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("start_time > ?", time.Now()).
		Where("club_id IN (?)", s.db.Model(&entity.Membership{}).Select("club_id").Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}
