package models

import (
	"time"
)

// ResultWon is the outcome the win statistics compare against.
const ResultWon = "won"

type GameRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Word      string    `gorm:"not null;size:5" json:"word"`
	Score     int       `gorm:"not null" json:"score"`
	TimeTaken int       `gorm:"not null" json:"time_taken"`
	Attempts  int       `gorm:"not null" json:"attempts"`
	Result    string    `gorm:"not null;size:10" json:"result"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName overrides the table name used by GameRecord to `game_history`
func (GameRecord) TableName() string {
	return "game_history"
}
