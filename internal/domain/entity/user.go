package entity

import (
	"time"
)

type Role string

const (
	Student   Role = "student"
	ClubAdmin Role = "club_admin"
	Admin     Role = "admin"
)

type User struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Role      Role   `gorm:"not null"`
	Name      string `gorm:"not null"`
	// Email is stored lowercased, lookups are case-insensitive.
	Email    string `gorm:"not null;unique"`
	Password string `gorm:"not null"`
	IsActive bool   `gorm:"default:true"`
}

// StudentProfile extends a User with role=student. Shares the user's
// primary key and is removed together with the owning user.
type StudentProfile struct {
	UserID        int64 `gorm:"primaryKey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	StudentNumber string `gorm:"not null;unique"`
	Faculty       string
	Program       string
	Semester      int
}
