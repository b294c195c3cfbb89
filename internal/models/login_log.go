package models

import "time"

// LoginLog records one successful login. Insert-only.
type LoginLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	LoginTime time.Time `json:"loginTime" gorm:"autoCreateTime"`
}
