package repositories

import (
	"errors"

	"bankapi/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines user-related database operations. Soft-deleted users
// are treated as absent by every method.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List() ([]models.User, error)
}
