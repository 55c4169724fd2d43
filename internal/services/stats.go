package services

import (
	"log/slog"
	"time"

	"wordrush/internal/models"

	"gorm.io/gorm"
)

const (
	// HistoryLimit caps how many recent games a stats request returns.
	HistoryLimit = 100
	// LeaderboardLimit is the size of the global top-scores list.
	LeaderboardLimit = 10
)

type PlayerStats struct {
	TotalGames int64   `json:"total_games"`
	Wins       int64   `json:"wins"`
	AvgScore   float64 `json:"avg_score"`
	BestScore  int     `json:"best_score"`
	AvgTime    float64 `json:"avg_time"`
}

type LeaderboardEntry struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	TimeTaken int       `json:"time_taken"`
}

type StatsService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStatsService(db *gorm.DB, logger *slog.Logger) *StatsService {
	return &StatsService{
		db:     db,
		logger: logger,
	}
}

// HistoryByUser returns a user's games, most recent first, capped at
// HistoryLimit.
func (s *StatsService) HistoryByUser(userID uint) ([]models.GameRecord, error) {
	var history []models.GameRecord
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(HistoryLimit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// AggregateByUser computes a user's totals in the database rather than
// in Go.
func (s *StatsService) AggregateByUser(userID uint) (PlayerStats, error) {
	var stats PlayerStats
	err := s.db.Model(&models.GameRecord{}).
		Select("COUNT(*) as total_games, "+
			"COALESCE(SUM(CASE WHEN result = ? THEN 1 ELSE 0 END), 0) as wins, "+
			"COALESCE(AVG(score), 0) as avg_score, "+
			"COALESCE(MAX(score), 0) as best_score, "+
			"COALESCE(AVG(time_taken), 0) as avg_time", models.ResultWon).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return PlayerStats{}, err
	}
	return stats, nil
}

// TopScores returns the global leaderboard, highest score first with
// insertion order as the tiebreak.
func (s *StatsService) TopScores() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := s.db.Model(&models.GameRecord{}).
		Select("users.username, game_history.score, game_history.created_at, game_history.time_taken").
		Joins("JOIN users ON users.id = game_history.user_id").
		Order("game_history.score desc, game_history.id asc").
		Limit(LeaderboardLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
