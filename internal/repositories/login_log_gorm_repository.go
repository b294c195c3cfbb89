package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"snakegame/internal/models"
)

// GORMLoginLogRepository is a GORM implementation of LoginLogRepository.
type GORMLoginLogRepository struct {
	db *gorm.DB
}

// NewGORMLoginLogRepository creates a new instance of GORMLoginLogRepository.
func NewGORMLoginLogRepository(db *gorm.DB) *GORMLoginLogRepository {
	return &GORMLoginLogRepository{
		db: db,
	}
}

// Create records a login for an already-authenticated user id.
func (r *GORMLoginLogRepository) Create(userID uint) error {
	record := models.LoginLog{UserID: userID}
	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to log login for user %d: %w", userID, err)
	}
	return nil
}

// ListByUser returns up to limit of the user's logins, newest first.
func (r *GORMLoginLogRepository) ListByUser(userID uint, limit int) ([]models.LoginRecord, error) {
	records := make([]models.LoginRecord, 0)
	err := r.db.Model(&models.LoginLog{}).
		Select("login_time").
		Where("user_id = ?", userID).
		Order("login_time DESC, id DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logins for user %d: %w", userID, err)
	}
	return records, nil
}
