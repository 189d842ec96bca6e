package repositories

import (
	"errors"

	"bankapi/internal/models"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines account-related database operations.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uint) (*models.Account, error)
	List() ([]models.Account, error)
	Delete(id uint) error
}
