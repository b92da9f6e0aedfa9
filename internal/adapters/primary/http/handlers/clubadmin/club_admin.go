package clubadmin

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/adapters/primary/http/request"
	"github.com/clubsphere/backend/internal/adapters/primary/http/respond"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

// Handler serves the club admin surface. Every operation is scoped to the
// single club linked to the authenticated admin; the club id never comes
// from the client.
type Handler struct {
	logger *types.Logger

	clubService         primary.ClubService
	applicationService  primary.ApplicationService
	membershipService   primary.MembershipService
	announcementService primary.AnnouncementService
	eventService        primary.EventService
}

func New(
	clubSvc primary.ClubService,
	applicationSvc primary.ApplicationService,
	membershipSvc primary.MembershipService,
	announcementSvc primary.AnnouncementService,
	eventSvc primary.EventService,
	lg *types.Logger,
) *Handler {
	return &Handler{
		logger:              lg,
		clubService:         clubSvc,
		applicationService:  applicationSvc,
		membershipService:   membershipSvc,
		announcementService: announcementSvc,
		eventService:        eventSvc,
	}
}

// ownClub resolves the club linked to the session's admin.
func (h *Handler) ownClub(w http.ResponseWriter, r *http.Request) (*entity.Club, bool) {
	user := middlewares.UserFromContext(r.Context())

	club, err := h.clubService.GetByAdmin(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return nil, false
	}
	return club, true
}

func (h *Handler) Club(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, club)
}

type updateClubRequest struct {
	Mission      string `json:"mission"`
	Vision       string `json:"vision"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	AdvisorName  string `json:"advisor_name"`
	AdvisorEmail string `json:"advisor_email" validate:"omitempty,email"`
	AdvisorPhone string `json:"advisor_phone"`
}

// UpdateClub updates the club profile fields. Name and category changes go
// through the platform admin.
func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	var req updateClubRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	club.Mission = req.Mission
	club.Vision = req.Vision
	club.Email = req.Email
	club.Phone = req.Phone
	club.AdvisorName = req.AdvisorName
	club.AdvisorEmail = req.AdvisorEmail
	club.AdvisorPhone = req.AdvisorPhone

	updated, err := h.clubService.Update(r.Context(), club)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// Applicants lists the Pending applications for the admin's club.
func (h *Handler) Applicants(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	applicants, err := h.applicationService.PendingByClub(r.Context(), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, applicants)
}

// Approve flips a Pending application to Approved and admits the member.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	err := h.applicationService.Approve(r.Context(), chi.URLParam(r, "applicationID"), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "application approved")
}

// Reject flips a Pending application to its terminal Rejected state.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	err := h.applicationService.Reject(r.Context(), chi.URLParam(r, "applicationID"), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "application rejected")
}

func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	members, err := h.membershipService.MembersByClub(r.Context(), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, members)
}

// RemoveMember drops a membership row. The user's account and any decided
// applications stay untouched.
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err = h.membershipService.Remove(r.Context(), userID, club.ID); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "member removed")
}

// ExportMembers streams the roster as an XLSX workbook.
func (h *Handler) ExportMembers(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	workbook, err := h.membershipService.ExportRoster(r.Context(), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("members-%s.xlsx", time.Now().Format("2006-01-02"))))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

func (h *Handler) Announcements(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	announcements, err := h.announcementService.GetByClub(r.Context(), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, announcements)
}

type createAnnouncementRequest struct {
	Title      string            `json:"title" validate:"required"`
	Content    string            `json:"content"`
	Visibility entity.Visibility `json:"visibility" validate:"omitempty,oneof=Public Private"`
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	var req createAnnouncementRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	announcement, err := h.announcementService.Create(r.Context(), &entity.Announcement{
		ClubID:     club.ID,
		Title:      req.Title,
		Content:    req.Content,
		Visibility: req.Visibility,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, announcement)
}

func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "announcementID"), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "announcement deleted")
}

func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	events, err := h.eventService.GetByClub(r.Context(), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, events)
}

type createEventRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Visibility  entity.Visibility `json:"visibility" validate:"omitempty,oneof=Public Private"`
	StartTime   time.Time         `json:"start_time" validate:"required"`
	Venue       string            `json:"venue"`
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.eventService.Create(r.Context(), &entity.Event{
		ClubID:      club.ID,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
		StartTime:   req.StartTime,
		Venue:       req.Venue,
	})
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	club, ok := h.ownClub(w, r)
	if !ok {
		return
	}

	err := h.eventService.Delete(r.Context(), chi.URLParam(r, "eventID"), club.ID)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "event deleted")
}
