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

type ClubService struct {
	logger *types.Logger

	repo secondary.ClubRepository
}

func NewClubService(logger *types.Logger, storage secondary.ClubRepository) *ClubService {
	return &ClubService{
		logger: logger,
		repo:   storage,
	}
}

// Create provisions the club together with exactly one club_admin account
// linked to it.
func (s *ClubService) Create(ctx context.Context, club *entity.Club, admin *entity.User) (*entity.Club, error) {
	created, err := s.repo.CreateWithAdmin(ctx, club, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("new club created: %s (%s), admin %s", created.Name, created.ID, admin.Email)
	return created, nil
}

func (s *ClubService) GetByAdmin(ctx context.Context, adminUserID int64) (*entity.Club, error) {
	club, err := s.repo.GetByAdmin(ctx, adminUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrClubNotFound
	}
	return club, err
}

func (s *ClubService) GetAll(ctx context.Context) ([]dto.ClubInfo, error) {
	return s.repo.GetAll(ctx)
}

func (s *ClubService) GetDetails(ctx context.Context, id string) (*dto.ClubDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrClubNotFound
	}
	return details, err
}

func (s *ClubService) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	return s.repo.Update(ctx, club)
}

// Delete removes the club and every dependent record in one transaction.
func (s *ClubService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	s.logger.Infof("club %s deleted", id)
	return nil
}
