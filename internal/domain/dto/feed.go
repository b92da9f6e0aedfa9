package dto

import (
	"time"

	"github.com/clubsphere/backend/internal/domain/entity"
)

// FeedSource marks whether a feed item comes from a club the student has
// joined ("My Club") or from elsewhere.
const (
	SourceMyClub = "My Club"
	SourceOther  = "Other"
)

type AnnouncementFeedItem struct {
	ID         string            `json:"id"`
	ClubID     string            `json:"club_id"`
	ClubName   string            `json:"club_name"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Visibility entity.Visibility `json:"visibility"`
	Source     string            `json:"source"`
	PostedAt   time.Time         `json:"posted_at"`
}

type EventFeedItem struct {
	ID          string            `json:"id"`
	ClubID      string            `json:"club_id"`
	ClubName    string            `json:"club_name"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Visibility  entity.Visibility `json:"visibility"`
	Source      string            `json:"source"`
	StartTime   time.Time         `json:"start_time"`
	Venue       string            `json:"venue,omitempty"`
}
