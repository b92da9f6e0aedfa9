package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/ports/secondary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type MembershipService struct {
	logger *types.Logger

	repo secondary.MembershipRepository
}

func NewMembershipService(logger *types.Logger, storage secondary.MembershipRepository) *MembershipService {
	return &MembershipService{
		logger: logger,
		repo:   storage,
	}
}

// Remove expels a member from a club. Application history is untouched; an
// expelled member can reapply and be approved again.
func (s *MembershipService) Remove(ctx context.Context, userID int64, clubID string) error {
	if err := s.repo.Delete(ctx, userID, clubID); err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}
	s.logger.Infof("(user: %d) removed from club %s", userID, clubID)
	return nil
}

func (s *MembershipService) MembersByClub(ctx context.Context, clubID string) ([]dto.Member, error) {
	return s.repo.MembersByClub(ctx, clubID)
}

// ExportRoster renders the member list of a club as an XLSX workbook.
func (s *MembershipService) ExportRoster(ctx context.Context, clubID string) ([]byte, error) {
	members, err := s.repo.MembersByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("export roster: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Members"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export roster: %w", err)
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export roster: %w", err)
	}

	headers := []string{"Name", "Email", "Student Number", "Faculty", "Program", "Joined"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("export roster: %w", err)
		}
	}

	for row, member := range members {
		values := []interface{}{
			member.Name,
			member.Email,
			member.StudentNumber,
			member.Faculty,
			member.Program,
			member.JoinedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err = f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("export roster: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export roster: %w", err)
	}

	return buf.Bytes(), nil
}
