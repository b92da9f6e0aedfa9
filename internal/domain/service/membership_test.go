package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

func TestMembershipService_Remove(t *testing.T) {
	ctx := context.Background()
	membershipRepo := newFakeMembershipRepo()
	service := NewMembershipService(testLogger(), membershipRepo)

	_, err := membershipRepo.Create(ctx, &entity.Membership{UserID: 1, ClubID: "club-1"})
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, 1, "club-1"))

	isMember, err := membershipRepo.Exists(ctx, 1, "club-1")
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestMembershipService_ExportRoster(t *testing.T) {
	ctx := context.Background()
	membershipRepo := newFakeMembershipRepo()
	service := NewMembershipService(testLogger(), membershipRepo)

	joined := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	membershipRepo.roster["club-1"] = []dto.Member{
		{Name: "Ada Lovelace", Email: "ada@uni.edu", StudentNumber: "S-100", Faculty: "Engineering", Program: "CS", JoinedAt: joined},
		{Name: "Alan Turing", Email: "alan@uni.edu", StudentNumber: "S-101", Faculty: "Science", Program: "Math", JoinedAt: joined},
	}

	workbook, err := service.ExportRoster(ctx, "club-1")
	require.NoError(t, err)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Student Number", "Faculty", "Program", "Joined"}, rows[0])
	assert.Equal(t, "Ada Lovelace", rows[1][0])
	assert.Equal(t, "ada@uni.edu", rows[1][1])
	assert.Equal(t, "2026-03-14", rows[1][5])
	assert.Equal(t, "Alan Turing", rows[2][0])
}

func TestMembershipService_ExportRoster_Empty(t *testing.T) {
	service := NewMembershipService(testLogger(), newFakeMembershipRepo())

	workbook, err := service.ExportRoster(context.Background(), "club-1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
