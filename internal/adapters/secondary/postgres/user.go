package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (s *UserRepository) CreateStudent(ctx context.Context, user *entity.User, profile *entity.StudentProfile) (*entity.User, error) {
	user.Email = strings.ToLower(user.Email)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emailTaken int64
		if err := tx.Model(&entity.User{}).Where("email = ?", user.Email).Count(&emailTaken).Error; err != nil {
			return err
		}
		if emailTaken > 0 {
			return errorz.ErrEmailTaken
		}

		var numberTaken int64
		if err := tx.Model(&entity.StudentProfile{}).Where("student_number = ?", profile.StudentNumber).Count(&numberTaken).Error; err != nil {
			return err
		}
		if numberTaken > 0 {
			return errorz.ErrStudentNumberTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.Create(profile).Error
	})

	return user, err
}

func (s *UserRepository) Get(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (s *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	return &user, err
}

func (s *UserRepository) GetProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error) {
	var profile entity.StudentProfile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	return &profile, err
}

func (s *UserRepository) UpdateProfile(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error) {
	err := s.db.WithContext(ctx).Save(profile).Error
	return profile, err
}

func (s *UserRepository) ListStudents(ctx context.Context) ([]dto.StudentSummary, error) {
	type rawStudent struct {
		UserID        int64  `gorm:"column:user_id"`
		Name          string `gorm:"column:name"`
		Email         string `gorm:"column:email"`
		StudentNumber string `gorm:"column:student_number"`
		Faculty       string `gorm:"column:faculty"`
		Program       string `gorm:"column:program"`
		ClubsJoined   int64  `gorm:"column:clubs_joined"`
	}

	var rawResult []rawStudent
	err := s.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.name, users.email,
			student_profiles.student_number, student_profiles.faculty, student_profiles.program,
			(SELECT COUNT(*) FROM memberships WHERE memberships.user_id = users.id) AS clubs_joined`).
		Joins("JOIN student_profiles ON student_profiles.user_id = users.id").
		Where("users.role = ?", entity.Student).
		Order("users.name").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.StudentSummary, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.StudentSummary{
			UserID:        raw.UserID,
			Name:          raw.Name,
			Email:         raw.Email,
			StudentNumber: raw.StudentNumber,
			Faculty:       raw.Faculty,
			Program:       raw.Program,
			ClubsJoined:   raw.ClubsJoined,
		}
	}

	return result, nil
}

// DeleteCascade removes the dependent rows before the user itself. Order
// matters because of the foreign-key relationships.
func (s *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entity.StudentProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, "id = ?", id).Error
	})
}
