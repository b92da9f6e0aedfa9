package secondary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

// ClubRepository defines the interface for club data access
type ClubRepository interface {
	// CreateWithAdmin provisions the club, its club_admin user and the
	// membership linking the two in one transaction.
	CreateWithAdmin(ctx context.Context, club *entity.Club, admin *entity.User) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetByAdmin(ctx context.Context, adminUserID int64) (*entity.Club, error)
	GetAll(ctx context.Context) ([]dto.ClubInfo, error)
	GetDetails(ctx context.Context, id string) (*dto.ClubDetails, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	// DeleteCascade removes memberships, applications, announcements and
	// events of the club before the club row itself, all in one transaction.
	DeleteCascade(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
}
