package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/ports/secondary"
)

// StatsService computes the per-user dashboard counters. The counts are
// derived from the membership, application and event sets on every call, so
// they need no invalidation when the lifecycle mutates state.
type StatsService struct {
	userRepo       secondary.UserRepository
	membershipRepo secondary.MembershipRepository
	appRepo        secondary.ApplicationRepository
	eventRepo      secondary.EventRepository
}

func NewStatsService(
	userStorage secondary.UserRepository,
	membershipStorage secondary.MembershipRepository,
	applicationStorage secondary.ApplicationRepository,
	eventStorage secondary.EventRepository,
) *StatsService {
	return &StatsService{
		userRepo:       userStorage,
		membershipRepo: membershipStorage,
		appRepo:        applicationStorage,
		eventRepo:      eventStorage,
	}
}

func (s *StatsService) ForUser(ctx context.Context, userID int64) (*dto.StudentStats, error) {
	if _, err := s.userRepo.Get(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrUserNotFound
		}
		return nil, fmt.Errorf("user stats: %w", err)
	}

	joined, err := s.membershipRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	applications, err := s.appRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	upcoming, err := s.eventRepo.CountUpcomingForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	return &dto.StudentStats{
		Joined:         joined,
		Applications:   applications,
		UpcomingEvents: upcoming,
	}, nil
}
