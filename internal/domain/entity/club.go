package entity

import (
	"time"
)

type Club struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"not null;unique"`
	Mission      string
	Vision       string
	Email        string
	Phone        string
	AdvisorName  string
	AdvisorEmail string
	AdvisorPhone string
	CategoryID   *int64
}

type Category struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null;unique"`
}
