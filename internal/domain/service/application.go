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

// ApplicationService implements the application lifecycle: submission with
// ordered precondition checks, the Pending->Approved/Rejected transitions
// and applicant-owned cancellation.
type ApplicationService struct {
	logger *types.Logger

	repo           secondary.ApplicationRepository
	userRepo       secondary.UserRepository
	clubRepo       secondary.ClubRepository
	membershipRepo secondary.MembershipRepository
}

func NewApplicationService(
	logger *types.Logger,
	storage secondary.ApplicationRepository,
	userStorage secondary.UserRepository,
	clubStorage secondary.ClubRepository,
	membershipStorage secondary.MembershipRepository,
) *ApplicationService {
	return &ApplicationService{
		logger:         logger,
		repo:           storage,
		userRepo:       userStorage,
		clubRepo:       clubStorage,
		membershipRepo: membershipStorage,
	}
}

// Submit runs the precondition chain in order, first failure wins:
// active user, existing club, not already a member, no pending application.
// A prior Rejected application does not block reapplying. The partial unique
// index backs the pending check under concurrency.
func (s *ApplicationService) Submit(ctx context.Context, userEmail string, clubID string) (*entity.Application, error) {
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}
	if !user.IsActive {
		return nil, errorz.ErrUserNotFound
	}

	if _, err = s.clubRepo.Get(ctx, clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrClubNotFound
		}
		return nil, fmt.Errorf("submit application: %w", err)
	}

	isMember, err := s.membershipRepo.Exists(ctx, user.ID, clubID)
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}
	if isMember {
		return nil, errorz.ErrAlreadyMember
	}

	hasPending, err := s.repo.HasPending(ctx, user.ID, clubID)
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}
	if hasPending {
		return nil, errorz.ErrDuplicateApplication
	}

	application, err := s.repo.Create(ctx, &entity.Application{
		UserID: user.ID,
		ClubID: clubID,
		Status: entity.ApplicationPending,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("(user: %d) applied to club %s, application %s", user.ID, clubID, application.ID)
	return application, nil
}

// Approve moves a Pending application to Approved and creates the
// membership; the repository performs both writes in one transaction.
func (s *ApplicationService) Approve(ctx context.Context, id, clubID string) error {
	if err := s.ownedByClub(ctx, id, clubID); err != nil {
		return err
	}
	if err := s.repo.Approve(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("application %s approved by club %s", id, clubID)
	return nil
}

// Reject moves a Pending application to its terminal Rejected state.
func (s *ApplicationService) Reject(ctx context.Context, id, clubID string) error {
	if err := s.ownedByClub(ctx, id, clubID); err != nil {
		return err
	}
	if err := s.repo.Reject(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("application %s rejected by club %s", id, clubID)
	return nil
}

// ownedByClub hides applications of other clubs from the caller instead of
// revealing that the id exists.
func (s *ApplicationService) ownedByClub(ctx context.Context, id, clubID string) error {
	application, err := s.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.ErrApplicationNotFound
	}
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}
	if application.ClubID != clubID {
		return errorz.ErrApplicationNotFound
	}
	return nil
}

// Cancel deletes a still-Pending application. Only the applicant may cancel,
// and decided applications cannot be cancelled.
func (s *ApplicationService) Cancel(ctx context.Context, id string, requesterID int64) error {
	application, err := s.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.ErrApplicationNotFound
	}
	if err != nil {
		return fmt.Errorf("cancel application: %w", err)
	}

	if application.UserID != requesterID {
		return errorz.ErrNotApplicant
	}
	if application.Status != entity.ApplicationPending {
		return errorz.ErrAppNotProcessable
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel application: %w", err)
	}

	s.logger.Infof("(user: %d) cancelled application %s", requesterID, id)
	return nil
}

func (s *ApplicationService) PendingByClub(ctx context.Context, clubID string) ([]dto.Applicant, error) {
	return s.repo.PendingByClub(ctx, clubID)
}

func (s *ApplicationService) GetByUser(ctx context.Context, userID int64) ([]dto.StudentApplication, error) {
	return s.repo.GetByUser(ctx, userID)
}
