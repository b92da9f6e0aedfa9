package entity

import (
	"time"
)

// Visibility controls whether a post is shown to non-members of the club.
type Visibility string

const (
	VisibilityPublic  Visibility = "Public"
	VisibilityPrivate Visibility = "Private"
)

type Announcement struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ClubID     string `gorm:"not null;type:uuid;index"`
	Title      string `gorm:"not null"`
	Content    string
	Visibility Visibility `gorm:"not null;default:'Public'"`
}

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClubID      string `gorm:"not null;type:uuid;index"`
	Name        string `gorm:"not null"`
	Description string
	Visibility  Visibility `gorm:"not null;default:'Public'"`
	StartTime   time.Time  `gorm:"not null"`
	Venue       string
}
