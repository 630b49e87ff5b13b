package models

import "time"

// RefreshToken is a persisted opaque token that can be exchanged once for a
// fresh session token. Rotation deletes the row, so a token that is gone has
// either been used or expired.
type RefreshToken struct {
	Token     string `gorm:"size:36;primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	ExpiresAt time.Time
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
}
