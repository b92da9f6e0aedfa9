package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/secondary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type UserService struct {
	logger *types.Logger

	repo secondary.UserRepository
}

func NewUserService(logger *types.Logger, storage secondary.UserRepository) *UserService {
	return &UserService{
		logger: logger,
		repo:   storage,
	}
}

// RegisterStudent creates the user and its student profile in one
// transaction. The role is always student; admin accounts are seeded
// out-of-band and club_admin accounts come from club provisioning.
func (s *UserService) RegisterStudent(ctx context.Context, user *entity.User, profile *entity.StudentProfile) (*entity.User, error) {
	user.Role = entity.Student
	user.IsActive = true

	created, err := s.repo.CreateStudent(ctx, user, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("(user: %d) student registered: %s", created.ID, created.Email)
	return created, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrProfileNotFound
	}
	return profile, err
}

func (s *UserService) UpdateProfile(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error) {
	if _, err := s.repo.GetProfile(ctx, profile.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.repo.UpdateProfile(ctx, profile)
}

func (s *UserService) ListStudents(ctx context.Context) ([]dto.StudentSummary, error) {
	return s.repo.ListStudents(ctx)
}

// Delete removes the user together with its profile, memberships and
// applications.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Infof("user %d deleted", id)
	return nil
}
