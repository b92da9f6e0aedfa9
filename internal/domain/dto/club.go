package dto

import (
	"time"

	"github.com/clubsphere/backend/internal/domain/entity"
)

// ClubInfo is a club row enriched with its category name and member count,
// used by the explore and admin club listings.
type ClubInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name,omitempty"`
	MemberCount  int64  `json:"member_count"`
	AdvisorName  string `json:"advisor_name,omitempty"`
}

// ClubDetails backs the club details modal: full club profile plus its
// upcoming events.
type ClubDetails struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	CategoryName string         `json:"category_name,omitempty"`
	Mission      string         `json:"mission,omitempty"`
	Vision       string         `json:"vision,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	AdvisorName  string         `json:"advisor_name,omitempty"`
	AdvisorEmail string         `json:"advisor_email,omitempty"`
	AdvisorPhone string         `json:"advisor_phone,omitempty"`
	MemberCount  int64          `json:"member_count"`
	Events       []entity.Event `json:"events"`
}

// Member is a membership row joined with the member's user and profile data.
type Member struct {
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	StudentNumber string    `json:"student_number,omitempty"`
	Faculty       string    `json:"faculty,omitempty"`
	Program       string    `json:"program,omitempty"`
	JoinedAt      time.Time `json:"joined_at"`
}
