package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
	}
}

func (s *MembershipRepository) Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	err := s.db.WithContext(ctx).Create(membership).Error
	return membership, err
}

func (s *MembershipRepository) Exists(ctx context.Context, userID int64, clubID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Membership{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error
	return count > 0, err
}

func (s *MembershipRepository) Delete(ctx context.Context, userID int64, clubID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Delete(&entity.Membership{}).Error
}

func (s *MembershipRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Membership{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}


func (s *MembershipRepository) MembersByClub(ctx context.Context, clubID string) ([]dto.Member, error) {
	type rawMember struct {
		UserID        int64     `gorm:"column:user_id"`
		Name          string    `gorm:"column:name"`
		Email         string    `gorm:"column:email"`
		StudentNumber string    `gorm:"column:student_number"`
		Faculty       string    `gorm:"column:faculty"`
		Program       string    `gorm:"column:program"`
		JoinedAt      time.Time `gorm:"column:joined_at"`
	}

	var rawResult []rawMember
	err := s.db.WithContext(ctx).
		Table("memberships").
		Select(`memberships.user_id, users.name, users.email,
			student_profiles.student_number, student_profiles.faculty, student_profiles.program,
			memberships.created_at AS joined_at`).
		Joins("JOIN users ON users.id = memberships.user_id").
		Joins("LEFT JOIN student_profiles ON student_profiles.user_id = memberships.user_id").
		Where("memberships.club_id = ?", clubID).
		Order("users.name").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.Member, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.Member{
			UserID:        raw.UserID,
			Name:          raw.Name,
			Email:         raw.Email,
			StudentNumber: raw.StudentNumber,
			Faculty:       raw.Faculty,
			Program:       raw.Program,
			JoinedAt:      raw.JoinedAt,
		}
	}

	return result, nil
}
