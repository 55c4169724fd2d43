package models

import (
	"time"
)

type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"not null;size:50" json:"username"`
	Email        string       `gorm:"unique;not null;size:100" json:"email"`
	PasswordHash string       `gorm:"column:password;not null;size:255" json:"-"`
	APIKey       string       `gorm:"unique;index;size:36" json:"api_key"`
	CreatedAt    time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Games        []GameRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
}
