package student

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type stubApplicationService struct {
	submitFn func(ctx context.Context, userEmail, clubID string) (*entity.Application, error)
	cancelFn func(ctx context.Context, id string, requesterID int64) error
}

func (s *stubApplicationService) Submit(ctx context.Context, userEmail, clubID string) (*entity.Application, error) {
	return s.submitFn(ctx, userEmail, clubID)
}

func (s *stubApplicationService) Approve(context.Context, string, string) error { return nil }
func (s *stubApplicationService) Reject(context.Context, string, string) error  { return nil }

func (s *stubApplicationService) Cancel(ctx context.Context, id string, requesterID int64) error {
	return s.cancelFn(ctx, id, requesterID)
}

func (s *stubApplicationService) PendingByClub(context.Context, string) ([]dto.Applicant, error) {
	return nil, nil
}

func (s *stubApplicationService) GetByUser(context.Context, int64) ([]dto.StudentApplication, error) {
	return nil, nil
}

func newApplyHandler(apps *stubApplicationService) *Handler {
	return New(nil, nil, apps, nil, nil, nil, nil, types.NewLogger(zap.NewNop()))
}

func asStudent(req *http.Request) *http.Request {
	user := &entity.User{ID: 1, Email: "ada@uni.edu", Role: entity.Student, IsActive: true}
	return req.WithContext(middlewares.ContextWithUser(req.Context(), user))
}

const validClubID = "7f2c8f0a-94b7-4b67-9c3a-6d2f6a1f0e11"

func TestHandler_Apply(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		submit     func(ctx context.Context, userEmail, clubID string) (*entity.Application, error)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"club_id":"` + validClubID + `"}`,
			submit: func(_ context.Context, userEmail, clubID string) (*entity.Application, error) {
				return &entity.Application{ID: "app-1", UserID: 1, ClubID: clubID, Status: entity.ApplicationPending}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing club id",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"club_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "email of another user",
			body:       `{"club_id":"` + validClubID + `","user_email":"other@uni.edu"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "duplicate pending application",
			body: `{"club_id":"` + validClubID + `"}`,
			submit: func(context.Context, string, string) (*entity.Application, error) {
				return nil, errorz.ErrDuplicateApplication
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "already a member",
			body: `{"club_id":"` + validClubID + `"}`,
			submit: func(context.Context, string, string) (*entity.Application, error) {
				return nil, errorz.ErrAlreadyMember
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unknown club",
			body: `{"club_id":"` + validClubID + `"}`,
			submit: func(context.Context, string, string) (*entity.Application, error) {
				return nil, errorz.ErrClubNotFound
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newApplyHandler(&stubApplicationService{submitFn: tt.submit})

			req := asStudent(httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			h.Apply(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "app-1", body["application_id"])
				assert.Equal(t, "Pending", body["status"])
			}
		})
	}
}

func TestHandler_CancelApplication(t *testing.T) {
	tests := []struct {
		name       string
		cancel     func(ctx context.Context, id string, requesterID int64) error
		wantStatus int
	}{
		{
			name: "cancelled",
			cancel: func(_ context.Context, id string, requesterID int64) error {
				assert.Equal(t, "app-1", id)
				assert.EqualValues(t, 1, requesterID)
				return nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "someone else's application looks missing",
			cancel: func(context.Context, string, int64) error {
				return errorz.ErrNotApplicant
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "already decided",
			cancel: func(context.Context, string, int64) error {
				return errorz.ErrAppNotProcessable
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newApplyHandler(&stubApplicationService{cancelFn: tt.cancel})

			r := chi.NewRouter()
			r.Delete("/api/applications/{applicationID}", h.CancelApplication)

			req := asStudent(httptest.NewRequest(http.MethodDelete, "/api/applications/app-1", nil))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"message":"application cancelled"}`, rec.Body.String())
			}
		})
	}
}
