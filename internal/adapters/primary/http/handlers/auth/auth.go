package auth

import (
	"net/http"
	"time"

	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/adapters/primary/http/request"
	"github.com/clubsphere/backend/internal/adapters/primary/http/respond"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

type Handler struct {
	logger *types.Logger

	authService primary.AuthService
	userService primary.UserService
	clubService primary.ClubService
	sessionTTL  time.Duration
}

func New(
	authSvc primary.AuthService,
	userSvc primary.UserService,
	clubSvc primary.ClubService,
	sessionTTL time.Duration,
	lg *types.Logger,
) *Handler {
	return &Handler{
		logger:      lg,
		authService: authSvc,
		userService: userSvc,
		clubService: clubSvc,
		sessionTTL:  sessionTTL,
	}
}

type registerRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	StudentNumber string `json:"student_number" validate:"required"`
	Faculty       string `json:"faculty"`
	Program       string `json:"program"`
	Semester      int    `json:"semester" validate:"omitempty,min=1"`
}

type loginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=student club_admin admin"`
}

type userResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	// ClubID is set only for club admins.
	ClubID string `json:"club_id,omitempty"`
}

// Register creates a student account with its profile. Club admin accounts
// are provisioned by the platform admin, never self-registered.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.RegisterStudent(r.Context(),
		&entity.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		},
		&entity.StudentProfile{
			StudentNumber: req.StudentNumber,
			Faculty:       req.Faculty,
			Program:       req.Program,
			Semester:      req.Semester,
		},
	)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	respond.JSON(w, http.StatusCreated, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login authenticates against the requested role tab and sets the session
// cookie. A valid password with the wrong role tab is still rejected.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Authenticate(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(w, http.StatusOK, h.describe(r, user))
}

// Logout drops the server-side session and expires the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middlewares.SessionCookie); err == nil && cookie.Value != "" {
		if err = h.authService.Logout(r.Context(), cookie.Value); err != nil {
			respond.Error(w, h.logger, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.Message(w, http.StatusOK, "logged out")
}

// Me returns the session's user. Runs behind RequireAuth.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())
	respond.JSON(w, http.StatusOK, h.describe(r, user))
}

func (h *Handler) describe(r *http.Request, user *entity.User) userResponse {
	resp := userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.Role == entity.ClubAdmin {
		if club, err := h.clubService.GetByAdmin(r.Context(), user.ID); err == nil {
			resp.ClubID = club.ID
		}
	}
	return resp
}
