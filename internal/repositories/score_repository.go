package repositories

import "snakegame/internal/models"

// ScoreRepository defines the interface for score data access.
type ScoreRepository interface {
	Create(userID uint, score int) error
	Leaderboard(limit int) ([]models.LeaderboardEntry, error)
	ListByUser(userID uint, limit int) ([]models.ScoreRecord, error)
	StatsByUser(userID uint) (bestScore int, totalGames int, err error)
}
