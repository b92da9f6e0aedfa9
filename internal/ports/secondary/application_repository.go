package secondary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) (*entity.Application, error)
	Get(ctx context.Context, id string) (*entity.Application, error)
	// Approve atomically flips a Pending application to Approved and inserts
	// the membership; both commit together or not at all.
	Approve(ctx context.Context, id string) error
	// Reject flips a Pending application to Rejected.
	Reject(ctx context.Context, id string) error
	// Delete removes the application row outright (cancellation).
	Delete(ctx context.Context, id string) error
	HasPending(ctx context.Context, userID int64, clubID string) (bool, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	PendingByClub(ctx context.Context, clubID string) ([]dto.Applicant, error)
	GetByUser(ctx context.Context, userID int64) ([]dto.StudentApplication, error)
}
