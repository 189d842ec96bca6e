package repositories

import (
	"errors"

	"bankapi/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository defines card-related database operations. Soft-deleted cards
// are absent from every method; methods named *Issued additionally require
// the issuance flag.
type CardRepository interface {
	Create(card *models.Card) error
	GetByID(id uint) (*models.Card, error)
	GetIssuedByID(id uint) (*models.Card, error)
	GetIssuedByNumber(number string) (*models.Card, error)
	Update(card *models.Card) error
	ListIssued() ([]models.Card, error)
	Delete(id uint) error
}
