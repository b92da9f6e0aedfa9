package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// ClubService defines the interface for club-related use cases
type ClubService interface {
	// Create provisions the club together with exactly one club_admin user.
	Create(ctx context.Context, club *entity.Club, admin *entity.User) (*entity.Club, error)
	GetByAdmin(ctx context.Context, adminUserID int64) (*entity.Club, error)
	GetAll(ctx context.Context) ([]dto.ClubInfo, error)
	GetDetails(ctx context.Context, id string) (*dto.ClubDetails, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService defines the interface for category lookups
type CategoryService interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
}
