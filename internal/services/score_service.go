package services

import (
	"fmt"

	"snakegame/internal/models"
	"snakegame/internal/repositories"
)

const (
	// LeaderboardLimit caps the global leaderboard.
	LeaderboardLimit = 20
	// historyLimit caps the per-user score and login listings. Aggregates
	// (best score, total games) still cover the full history.
	historyLimit = 50
)

// ScoreService handles game score persistence and reporting.
type ScoreService struct {
	scoreRepo repositories.ScoreRepository
	loginRepo repositories.LoginLogRepository
}

// NewScoreService creates a new ScoreService.
func NewScoreService(scoreRepo repositories.ScoreRepository, loginRepo repositories.LoginLogRepository) *ScoreService {
	return &ScoreService{
		scoreRepo: scoreRepo,
		loginRepo: loginRepo,
	}
}

// Save records one finished game for an authenticated user. The score is
// assumed non-negative; the HTTP layer rejects anything else before calling.
func (s *ScoreService) Save(userID uint, score int) error {
	if err := s.scoreRepo.Create(userID, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// Leaderboard returns the global top scores with usernames resolved.
func (s *ScoreService) Leaderboard() ([]models.LeaderboardEntry, error) {
	return s.scoreRepo.Leaderboard(LeaderboardLimit)
}

// RecordsFor assembles a user's stats bundle: the 50 most recent scores and
// logins plus best score and total games over the entire history.
func (s *ScoreService) RecordsFor(userID uint) (*models.UserRecords, error) {
	scores, err := s.scoreRepo.ListByUser(userID, historyLimit)
	if err != nil {
		return nil, err
	}
	logins, err := s.loginRepo.ListByUser(userID, historyLimit)
	if err != nil {
		return nil, err
	}
	best, total, err := s.scoreRepo.StatsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &models.UserRecords{
		Scores:     scores,
		Logins:     logins,
		BestScore:  best,
		TotalGames: total,
	}, nil
}
