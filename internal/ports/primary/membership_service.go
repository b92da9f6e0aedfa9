package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/dto"
)

// MembershipService defines the interface for membership use cases
type MembershipService interface {
	Remove(ctx context.Context, userID int64, clubID string) error
	MembersByClub(ctx context.Context, clubID string) ([]dto.Member, error)
	// ExportRoster renders the club's member list as an XLSX workbook.
	ExportRoster(ctx context.Context, clubID string) ([]byte, error)
}
