package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"snakegame/internal/models"
)

// GORMScoreRepository is a GORM implementation of ScoreRepository.
type GORMScoreRepository struct {
	db *gorm.DB
}

// NewGORMScoreRepository creates a new instance of GORMScoreRepository.
func NewGORMScoreRepository(db *gorm.DB) *GORMScoreRepository {
	return &GORMScoreRepository{
		db: db,
	}
}

// Create inserts a score row. The caller validates the score; the store's
// foreign key rejects a user id that does not exist.
func (r *GORMScoreRepository) Create(userID uint, score int) error {
	record := models.Score{UserID: userID, Score: score}
	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save score for user %d: %w", userID, err)
	}
	return nil
}

// Leaderboard returns the top scores joined to their usernames, highest
// score first. Ties are broken by earliest played_at (the score achieved
// first ranks higher), then id, so the ordering is deterministic.
func (r *GORMScoreRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0, limit)
	err := r.db.Table("scores").
		Select("users.username, scores.score, scores.played_at").
		Joins("JOIN users ON users.id = scores.user_id").
		Order("scores.score DESC, scores.played_at ASC, scores.id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	return entries, nil
}

// ListByUser returns up to limit of the user's scores, newest first.
func (r *GORMScoreRepository) ListByUser(userID uint, limit int) ([]models.ScoreRecord, error) {
	records := make([]models.ScoreRecord, 0)
	err := r.db.Model(&models.Score{}).
		Select("score, played_at").
		Where("user_id = ?", userID).
		Order("played_at DESC, id DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for user %d: %w", userID, err)
	}
	return records, nil
}

// StatsByUser aggregates over the user's entire score history, regardless of
// any listing cap. Both values are 0 for a user with no games.
func (r *GORMScoreRepository) StatsByUser(userID uint) (int, int, error) {
	var stats struct {
		BestScore  int
		TotalGames int
	}
	err := r.db.Model(&models.Score{}).
		Select("COALESCE(MAX(score), 0) AS best_score, COUNT(*) AS total_games").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate scores for user %d: %w", userID, err)
	}
	return stats.BestScore, stats.TotalGames, nil
}
