package models

import "time"

// Score represents one finished game submitted by a logged-in user.
// Rows are insert-only; a user's best score is always recomputed with
// MAX(score) rather than kept as a denormalized column.
type Score struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	User     User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Score    int       `json:"score" gorm:"not null" validate:"gte=0"`
	PlayedAt time.Time `json:"playedAt" gorm:"autoCreateTime"`
}
