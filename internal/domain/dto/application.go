package dto

import (
	"time"

	"github.com/clubsphere/backend/internal/domain/entity"
)

// Applicant is a pending application joined with the applicant's identity,
// shown to club admins on the applicants tab.
type Applicant struct {
	ApplicationID string    `json:"application_id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	StudentNumber string    `json:"student_number,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
}

// StudentApplication is an application row joined with the club name, shown
// on the student's "my applications" tab.
type StudentApplication struct {
	ApplicationID string                   `json:"application_id"`
	ClubID        string                   `json:"club_id"`
	ClubName      string                   `json:"club_name"`
	Status        entity.ApplicationStatus `json:"status"`
	AppliedAt     time.Time                `json:"applied_at"`
}
