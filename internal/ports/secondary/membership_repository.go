package secondary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
	Exists(ctx context.Context, userID int64, clubID string) (bool, error)
	Delete(ctx context.Context, userID int64, clubID string) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
	MembersByClub(ctx context.Context, clubID string) ([]dto.Member, error)
}
