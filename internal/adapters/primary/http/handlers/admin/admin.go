package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clubsphere/backend/internal/adapters/primary/http/request"
	"github.com/clubsphere/backend/internal/adapters/primary/http/respond"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type Handler struct {
	logger *types.Logger

	clubService primary.ClubService
	userService primary.UserService
}

func New(clubSvc primary.ClubService, userSvc primary.UserService, lg *types.Logger) *Handler {
	return &Handler{
		logger:      lg,
		clubService: clubSvc,
		userService: userSvc,
	}
}

type createClubRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID *int64 `json:"category_id"`
	Mission    string `json:"mission"`
	Vision     string `json:"vision"`

	AdminName     string `json:"admin_name" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required"`
}

type createClubResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AdminID    int64  `json:"admin_id"`
	AdminEmail string `json:"admin_email"`
}

// CreateClub provisions a club together with its single club_admin account
// and the admin's membership, all in one transaction.
func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	clubAdmin := &entity.User{
		Name:     req.AdminName,
		Email:    req.AdminEmail,
		Password: req.AdminPassword,
	}
	club, err := h.clubService.Create(r.Context(), &entity.Club{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Mission:    req.Mission,
		Vision:     req.Vision,
	}, clubAdmin)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createClubResponse{
		ID:         club.ID,
		Name:       club.Name,
		AdminID:    clubAdmin.ID,
		AdminEmail: clubAdmin.Email,
	})
}

func (h *Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.GetAll(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, clubs)
}

// DeleteClub removes a club and every dependent record.
func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	if err := h.clubService.Delete(r.Context(), chi.URLParam(r, "clubID")); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "club deleted")
}

// Students lists every student with the derived joined-club count.
func (h *Handler) Students(w http.ResponseWriter, r *http.Request) {
	students, err := h.userService.ListStudents(r.Context())
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, students)
}

// DeleteStudent removes the account with its profile, memberships and
// applications.
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err = h.userService.Delete(r.Context(), userID); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "student deleted")
}
