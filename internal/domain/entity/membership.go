package entity

import (
	"time"
)

// Membership is a confirmed (user, club) belonging record. The composite
// primary key guarantees at most one row per pair.
type Membership struct {
	UserID    int64  `gorm:"primaryKey"`
	ClubID    string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}
