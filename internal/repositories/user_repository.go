package repositories

import (
	"errors"

	"snakegame/internal/models"
)

// ErrDuplicateUsername is returned by Create when the username is already
// taken. Any other store failure propagates as-is.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the interface for user data access.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
