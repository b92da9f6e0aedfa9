package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

func (s *ApplicationRepository) Create(ctx context.Context, application *entity.Application) (*entity.Application, error) {
	err := s.db.WithContext(ctx).Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent submission for the same
		// (user, club); the partial unique index rejected the second row.
		return nil, errorz.ErrDuplicateApplication
	}
	return application, err
}

func (s *ApplicationRepository) Get(ctx context.Context, id string) (*entity.Application, error) {
	var application entity.Application
	err := s.db.WithContext(ctx).First(&application, "id = ?", id).Error
	return &application, err
}

// Approve flips a Pending application to Approved and inserts the membership
// for (applicant, club). The row is locked for the duration of the
// transaction so two concurrent approvals cannot both pass the status check;
// a crash between the two writes rolls the status back to Pending.
func (s *ApplicationRepository) Approve(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application entity.Application
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&application, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrAppNotProcessable
		}
		if err != nil {
			return err
		}
		if application.Status != entity.ApplicationPending {
			return errorz.ErrAppNotProcessable
		}

		err = tx.Model(&application).Update("status", entity.ApplicationApproved).Error
		if err != nil {
			return err
		}

		// Defensive duplicate check: never create a second membership row.
		var memberExists int64
		err = tx.Model(&entity.Membership{}).
			Where("user_id = ? AND club_id = ?", application.UserID, application.ClubID).
			Count(&memberExists).Error
		if err != nil {
			return err
		}
		if memberExists > 0 {
			return nil
		}

		return tx.Create(&entity.Membership{
			UserID: application.UserID,
			ClubID: application.ClubID,
		}).Error
	})
}

// Reject flips a Pending application to Rejected. Terminal, no membership
// side effect.
func (s *ApplicationRepository) Reject(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application entity.Application
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&application, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrAppNotProcessable
		}
		if err != nil {
			return err
		}
		if application.Status != entity.ApplicationPending {
			return errorz.ErrAppNotProcessable
		}

		return tx.Model(&application).Update("status", entity.ApplicationRejected).Error
	})
}

func (s *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&entity.Application{}, "id = ?", id).Error
}

func (s *ApplicationRepository) HasPending(ctx context.Context, userID int64, clubID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("user_id = ? AND club_id = ? AND status = ?", userID, clubID, entity.ApplicationPending).
		Count(&count).Error
	return count > 0, err
}

func (s *ApplicationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *ApplicationRepository) PendingByClub(ctx context.Context, clubID string) ([]dto.Applicant, error) {
	type rawApplicant struct {
		ApplicationID string    `gorm:"column:application_id"`
		UserID        int64     `gorm:"column:user_id"`
		Name          string    `gorm:"column:name"`
		Email         string    `gorm:"column:email"`
		StudentNumber string    `gorm:"column:student_number"`
		AppliedAt     time.Time `gorm:"column:applied_at"`
	}

	var rawResult []rawApplicant
	err := s.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id AS application_id, applications.user_id, users.name, users.email,
			student_profiles.student_number, applications.created_at AS applied_at`).
		Joins("JOIN users ON users.id = applications.user_id").
		Joins("LEFT JOIN student_profiles ON student_profiles.user_id = applications.user_id").
		Where("applications.club_id = ? AND applications.status = ?", clubID, entity.ApplicationPending).
		Order("applications.created_at").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.Applicant, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.Applicant{
			ApplicationID: raw.ApplicationID,
			UserID:        raw.UserID,
			Name:          raw.Name,
			Email:         raw.Email,
			StudentNumber: raw.StudentNumber,
			AppliedAt:     raw.AppliedAt,
		}
	}

	return result, nil
}

func (s *ApplicationRepository) GetByUser(ctx context.Context, userID int64) ([]dto.StudentApplication, error) {
	type rawApplication struct {
		ApplicationID string                   `gorm:"column:application_id"`
		ClubID        string                   `gorm:"column:club_id"`
		ClubName      string                   `gorm:"column:club_name"`
		Status        entity.ApplicationStatus `gorm:"column:status"`
		AppliedAt     time.Time                `gorm:"column:applied_at"`
	}

	var rawResult []rawApplication
	err := s.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id AS application_id, applications.club_id, clubs.name AS club_name,
			applications.status, applications.created_at AS applied_at`).
		Joins("JOIN clubs ON clubs.id = applications.club_id").
		Where("applications.user_id = ?", userID).
		Order("applications.created_at DESC").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.StudentApplication, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.StudentApplication{
			ApplicationID: raw.ApplicationID,
			ClubID:        raw.ClubID,
			ClubName:      raw.ClubName,
			Status:        raw.Status,
			AppliedAt:     raw.AppliedAt,
		}
	}

	return result, nil
}
