package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/pkg/logger/types"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", errorz.ErrUserNotFound, http.StatusNotFound},
		{"club not found", errorz.ErrClubNotFound, http.StatusNotFound},
		{"application not found", errorz.ErrApplicationNotFound, http.StatusNotFound},
		{"not the applicant", errorz.ErrNotApplicant, http.StatusNotFound},
		{"already a member", errorz.ErrAlreadyMember, http.StatusConflict},
		{"duplicate application", errorz.ErrDuplicateApplication, http.StatusConflict},
		{"already processed", errorz.ErrAppNotProcessable, http.StatusConflict},
		{"email taken", errorz.ErrEmailTaken, http.StatusConflict},
		{"club name taken", errorz.ErrClubNameTaken, http.StatusConflict},
		{"invalid credentials", errorz.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", errorz.ErrForbidden, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("submit: %w", errorz.ErrDuplicateApplication), http.StatusConflict},
	}

	logger := types.NewLogger(zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, logger, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, types.NewLogger(zap.NewNop()), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
