package models

import "time"

// Game represents a game in the store catalog.
//
// Deletes are hard deletes: a removed game's slug must become reusable
// immediately, so there is no soft-delete column.
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Slug        string  `gorm:"size:255;uniqueIndex;not null"`
	Price       float64 `gorm:"not null"`
	IsDigital   bool    `gorm:"not null"`
	ImageUrl    string  `gorm:"size:512"`
	ReleaseDate string  `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
