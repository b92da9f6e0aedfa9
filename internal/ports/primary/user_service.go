package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// UserService defines the interface for user-related use cases
type UserService interface {
	RegisterStudent(ctx context.Context, user *entity.User, profile *entity.StudentProfile) (*entity.User, error)
	GetProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error)
	ListStudents(ctx context.Context) ([]dto.StudentSummary, error)
	Delete(ctx context.Context, id int64) error
}

// StatsService computes the per-user dashboard counters
type StatsService interface {
	ForUser(ctx context.Context, userID int64) (*dto.StudentStats, error)
}
