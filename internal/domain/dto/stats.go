package dto

// StudentStats are the dashboard counters for one user. They are computed
// fresh on every request, never cached.
type StudentStats struct {
	Joined         int64 `json:"joined"`
	Applications   int64 `json:"applications"`
	UpcomingEvents int64 `json:"upcoming_events"`
}

// StudentSummary is a student row with the derived joined-club count, used
// by the admin students table.
type StudentSummary struct {
	UserID        int64  `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Faculty       string `json:"faculty,omitempty"`
	Program       string `json:"program,omitempty"`
	ClubsJoined   int64  `json:"clubs_joined"`
}
