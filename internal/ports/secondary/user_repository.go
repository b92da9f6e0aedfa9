package secondary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// UserRepository defines the interface for user and student profile data access
type UserRepository interface {
	// CreateStudent inserts the user and its student profile in one transaction.
	CreateStudent(ctx context.Context, user *entity.User, profile *entity.StudentProfile) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error)
	ListStudents(ctx context.Context) ([]dto.StudentSummary, error)
	// DeleteCascade removes the profile, memberships and applications of the
	// user before the user row itself, all in one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}
