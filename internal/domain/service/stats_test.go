package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/entity"
)

func TestStatsService_ForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh student has all-zero counters", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		membershipRepo := newFakeMembershipRepo()
		appRepo := newFakeApplicationRepo(membershipRepo)
		eventRepo := newFakeEventRepo()
		user := userRepo.add(entity.User{Email: "ada@uni.edu", Role: entity.Student, IsActive: true}, nil)

		service := NewStatsService(userRepo, membershipRepo, appRepo, eventRepo)

		stats, err := service.ForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, stats.Joined)
		assert.Zero(t, stats.Applications)
		assert.Zero(t, stats.UpcomingEvents)
	})

	t.Run("counters reflect memberships, applications and events", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		membershipRepo := newFakeMembershipRepo()
		appRepo := newFakeApplicationRepo(membershipRepo)
		eventRepo := newFakeEventRepo()
		user := userRepo.add(entity.User{Email: "ada@uni.edu", Role: entity.Student, IsActive: true}, nil)

		_, err := membershipRepo.Create(ctx, &entity.Membership{UserID: user.ID, ClubID: "club-1"})
		require.NoError(t, err)
		_, err = membershipRepo.Create(ctx, &entity.Membership{UserID: user.ID, ClubID: "club-2"})
		require.NoError(t, err)

		// One pending and one rejected application both count.
		_, err = appRepo.Create(ctx, &entity.Application{UserID: user.ID, ClubID: "club-3", Status: entity.ApplicationPending})
		require.NoError(t, err)
		_, err = appRepo.Create(ctx, &entity.Application{UserID: user.ID, ClubID: "club-4", Status: entity.ApplicationRejected})
		require.NoError(t, err)

		eventRepo.upcoming[user.ID] = 3

		service := NewStatsService(userRepo, membershipRepo, appRepo, eventRepo)

		stats, err := service.ForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats.Joined)
		assert.EqualValues(t, 2, stats.Applications)
		assert.EqualValues(t, 3, stats.UpcomingEvents)
	})

	t.Run("unknown user", func(t *testing.T) {
		membershipRepo := newFakeMembershipRepo()
		service := NewStatsService(newFakeUserRepo(), membershipRepo, newFakeApplicationRepo(membershipRepo), newFakeEventRepo())

		_, err := service.ForUser(ctx, 42)
		assert.ErrorIs(t, err, errorz.ErrUserNotFound)
	})
}
