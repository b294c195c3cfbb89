package repositories

import "snakegame/internal/models"

// LoginLogRepository defines the interface for login history data access.
type LoginLogRepository interface {
	Create(userID uint) error
	ListByUser(userID uint, limit int) ([]models.LoginRecord, error)
}
