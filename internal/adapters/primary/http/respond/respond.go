// Package respond maps service results and the domain error taxonomy onto
// JSON responses. Internal error detail stays in the logs, never in the body.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type errorBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// Message writes {"message": ...} with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Message: message})
}

// Error translates a domain error into a status code. Unknown errors are
// logged and surfaced as a generic 500.
func Error(w http.ResponseWriter, logger *types.Logger, err error) {
	switch {
	case errors.Is(err, errorz.ErrUserNotFound),
		errors.Is(err, errorz.ErrClubNotFound),
		errors.Is(err, errorz.ErrCategoryNotFound),
		errors.Is(err, errorz.ErrApplicationNotFound),
		errors.Is(err, errorz.ErrProfileNotFound),
		// Not-owned applications look like missing ones, so cancellation
		// does not leak other users' application ids.
		errors.Is(err, errorz.ErrNotApplicant):
		Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errorz.ErrAlreadyMember),
		errors.Is(err, errorz.ErrDuplicateApplication),
		errors.Is(err, errorz.ErrAppNotProcessable),
		errors.Is(err, errorz.ErrEmailTaken),
		errors.Is(err, errorz.ErrStudentNumberTaken),
		errors.Is(err, errorz.ErrClubNameTaken):
		Message(w, http.StatusConflict, err.Error())
	case errors.Is(err, errorz.ErrInvalidCredentials):
		Message(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, errorz.ErrForbidden):
		Message(w, http.StatusForbidden, err.Error())
	default:
		logger.Errorf("internal error: %v", err)
		Message(w, http.StatusInternalServerError, "internal server error")
	}
}
