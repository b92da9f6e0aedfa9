package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

func (s *AnnouncementRepository) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := s.db.WithContext(ctx).Create(announcement).Error
	return announcement, err
}

func (s *AnnouncementRepository) GetByClub(ctx context.Context, clubID string) ([]entity.Announcement, error) {
	announcements := make([]entity.Announcement, 0)
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

func (s *AnnouncementRepository) Delete(ctx context.Context, id, clubID string) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND club_id = ?", id, clubID).
		Delete(&entity.Announcement{}).Error
}

// FeedForUser returns public announcements plus private ones from the clubs
// the user belongs to. With myClubsOnly set, only the user's clubs are
// considered.
func (s *AnnouncementRepository) FeedForUser(ctx context.Context, userID int64, myClubsOnly bool) ([]dto.AnnouncementFeedItem, error) {
	type rawItem struct {
		ID         string            `gorm:"column:id"`
		ClubID     string            `gorm:"column:club_id"`
		ClubName   string            `gorm:"column:club_name"`
		Title      string            `gorm:"column:title"`
		Content    string            `gorm:"column:content"`
		Visibility entity.Visibility `gorm:"column:visibility"`
		IsMember   bool              `gorm:"column:is_member"`
		PostedAt   time.Time         `gorm:"column:posted_at"`
	}

	query := s.db.WithContext(ctx).
		Table("announcements").
		Select(`announcements.id, announcements.club_id, clubs.name AS club_name,
			announcements.title, announcements.content, announcements.visibility,
			announcements.created_at AS posted_at,
			(memberships.user_id IS NOT NULL) AS is_member`).
		Joins("JOIN clubs ON clubs.id = announcements.club_id").
		Joins("LEFT JOIN memberships ON memberships.club_id = announcements.club_id AND memberships.user_id = ?", userID).
		Order("announcements.created_at DESC")

	if myClubsOnly {
		query = query.Where("memberships.user_id IS NOT NULL")
	} else {
		query = query.Where("announcements.visibility = ? OR memberships.user_id IS NOT NULL", entity.VisibilityPublic)
	}

	var rawResult []rawItem
	if err := query.Scan(&rawResult).Error; err != nil {
		return nil, err
	}

	result := make([]dto.AnnouncementFeedItem, len(rawResult))
	for i, raw := range rawResult {
		source := dto.SourceOther
		if raw.IsMember {
			source = dto.SourceMyClub
		}
		result[i] = dto.AnnouncementFeedItem{
			ID:         raw.ID,
			ClubID:     raw.ClubID,
			ClubName:   raw.ClubName,
			Title:      raw.Title,
			Content:    raw.Content,
			Visibility: raw.Visibility,
			Source:     source,
			PostedAt:   raw.PostedAt,
		}
	}

	return result, nil
}
