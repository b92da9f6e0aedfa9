package entity

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// Application is a student's request to join a club. Status only moves
// Pending -> Approved or Pending -> Rejected; both are terminal. A partial
// unique index on (user_id, club_id) where status = 'Pending' backs the
// one-pending-application-per-pair invariant (see postgres.Migrate).
type Application struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64             `gorm:"not null;index"`
	ClubID    string            `gorm:"not null;type:uuid;index"`
	Status    ApplicationStatus `gorm:"not null;default:'Pending'"`
}
