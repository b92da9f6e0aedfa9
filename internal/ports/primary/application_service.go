package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// ApplicationService defines the interface for the application lifecycle use cases
type ApplicationService interface {
	// Submit creates a Pending application after the ordered precondition
	// checks (active user, existing club, not a member, no pending
	// application). Returns the created application.
	Submit(ctx context.Context, userEmail string, clubID string) (*entity.Application, error)
	// Approve and Reject act only on Pending applications of the given club;
	// applications of other clubs are reported as not found.
	Approve(ctx context.Context, id, clubID string) error
	Reject(ctx context.Context, id, clubID string) error
	// Cancel deletes a still-Pending application owned by requesterID.
	Cancel(ctx context.Context, id string, requesterID int64) error
	PendingByClub(ctx context.Context, clubID string) ([]dto.Applicant, error)
	GetByUser(ctx context.Context, userID int64) ([]dto.StudentApplication, error)
}
