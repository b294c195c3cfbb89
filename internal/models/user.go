package models

import "time"

// User represents a registered player.
// Rows are created on registration and never updated or deleted.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(20);not null" validate:"required,min=2,max=20"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"` // No json tag value for security
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
