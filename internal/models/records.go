package models

import "time"

// LeaderboardEntry is the typed projection of the scores-to-users join
// returned by the leaderboard query.
type LeaderboardEntry struct {
	Username string    `json:"username"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

// ScoreRecord is a single row of a user's game history.
type ScoreRecord struct {
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

// LoginRecord is a single row of a user's login history.
type LoginRecord struct {
	LoginTime time.Time `json:"loginTime"`
}

// UserRecords bundles a user's personal stats page. The scores and logins
// lists are capped at 50 rows, while BestScore and TotalGames aggregate over
// the user's full history.
type UserRecords struct {
	Scores     []ScoreRecord `json:"scores"`
	Logins     []LoginRecord `json:"logins"`
	BestScore  int           `json:"bestScore"`
	TotalGames int           `json:"totalGames"`
}
