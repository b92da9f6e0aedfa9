package student

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/adapters/primary/http/request"
	"github.com/clubsphere/backend/internal/adapters/primary/http/respond"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type Handler struct {
	logger *types.Logger

	clubService         primary.ClubService
	categoryService     primary.CategoryService
	applicationService  primary.ApplicationService
	statsService        primary.StatsService
	userService         primary.UserService
	announcementService primary.AnnouncementService
	eventService        primary.EventService
}

func New(
	clubSvc primary.ClubService,
	categorySvc primary.CategoryService,
	applicationSvc primary.ApplicationService,
	statsSvc primary.StatsService,
	userSvc primary.UserService,
	announcementSvc primary.AnnouncementService,
	eventSvc primary.EventService,
	lg *types.Logger,
) *Handler {
	return &Handler{
		logger:              lg,
		clubService:         clubSvc,
		categoryService:     categorySvc,
		applicationService:  applicationSvc,
		statsService:        statsSvc,
		userService:         userSvc,
		announcementService: announcementSvc,
		eventService:        eventSvc,
	}
}

// Clubs lists every club with category name and member count.
func (h *Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, clubs)
}

// ClubDetails returns the full club profile plus its upcoming events.
func (h *Handler) ClubDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.clubService.GetDetails(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, details)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, categories)
}

type applyRequest struct {
	ClubID string `json:"club_id" validate:"required,uuid"`
	// UserEmail is accepted for compatibility but must match the session
	// user; the application is always filed for the authenticated student.
	UserEmail string `json:"user_email" validate:"omitempty,email"`
}

// Apply files a Pending application for the authenticated student.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	var req applyRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserEmail != "" && strings.ToLower(req.UserEmail) != user.Email {
		respond.Message(w, http.StatusForbidden, "cannot apply on behalf of another user")
		return
	}

	application, err := h.applicationService.Submit(r.Context(), user.Email, req.ClubID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{
		"application_id": application.ID,
		"status":         string(application.Status),
	})
}

// CancelApplication deletes the student's own still-Pending application.
func (h *Handler) CancelApplication(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	err := h.applicationService.Cancel(r.Context(), chi.URLParam(r, "applicationID"), user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "application cancelled")
}

// Applications returns the student's own application history.
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetByUser(r.Context(), user)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, applications)
}

// Stats returns the dashboard counters, computed fresh on every call.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.statsService.ForUser(r.Context(), user)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

// AnnouncementFeed returns announcements visible to the student, tagged
// "My Club" or "Other". filter=my-clubs narrows it to joined clubs.
func (h *Handler) AnnouncementFeed(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	feed, err := h.announcementService.FeedForUser(r.Context(), user, r.URL.Query().Get("filter"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, feed)
}

// EventFeed returns future events visible to the student.
func (h *Handler) EventFeed(w http.ResponseWriter, r *http.Request) {
	user, ok := h.ownUserID(w, r)
	if !ok {
		return
	}

	feed, err := h.eventService.FeedForUser(r.Context(), user, r.URL.Query().Get("filter"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, feed)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	profile, err := h.userService.GetProfile(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, profileResponse{
		Name:          user.Name,
		Email:         user.Email,
		StudentNumber: profile.StudentNumber,
		Faculty:       profile.Faculty,
		Program:       profile.Program,
		Semester:      profile.Semester,
	})
}

type profileResponse struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Faculty       string `json:"faculty,omitempty"`
	Program       string `json:"program,omitempty"`
	Semester      int    `json:"semester,omitempty"`
}

type updateProfileRequest struct {
	Faculty  string `json:"faculty"`
	Program  string `json:"program"`
	Semester int    `json:"semester" validate:"omitempty,min=1"`
}

// UpdateProfile updates the mutable profile fields. The student number is
// immutable once registered.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	var req updateProfileRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.userService.GetProfile(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	current.Faculty = req.Faculty
	current.Program = req.Program
	current.Semester = req.Semester

	updated, err := h.userService.UpdateProfile(r.Context(), current)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, profileResponse{
		Name:          user.Name,
		Email:         user.Email,
		StudentNumber: updated.StudentNumber,
		Faculty:       updated.Faculty,
		Program:       updated.Program,
		Semester:      updated.Semester,
	})
}

// ownUserID resolves the {userID} path parameter and rejects requests for
// somebody else's data. Students only ever read their own rows.
func (h *Handler) ownUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	user := middlewares.UserFromContext(r.Context())

	raw := chi.URLParam(r, "userID")
	if raw == "" {
		return user.ID, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	if id != user.ID && user.Role != entity.Admin {
		respond.Message(w, http.StatusForbidden, "insufficient permissions")
		return 0, false
	}
	return id, true
}
