package repositories

import (
	"errors"

	"bankapi/internal/models"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func issued(db *gorm.DB) *gorm.DB {
	return db.Where("is_issued = ?", true)
}

func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *cardRepository) GetByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.Scopes(NotDeleted).First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &card, nil
}

func (r *cardRepository) GetIssuedByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.Scopes(NotDeleted, issued).First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &card, nil
}

// GetIssuedByNumber is the single read path gating all balance operations:
// the card must exist, be live and be issued.
func (r *cardRepository) GetIssuedByNumber(number string) (*models.Card, error) {
	var card models.Card
	err := r.db.Scopes(NotDeleted, issued).
		Where("number = ?", number).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &card, nil
}

func (r *cardRepository) Update(card *models.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *cardRepository) ListIssued() ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Scopes(NotDeleted, issued).Find(&cards).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return cards, nil
}

func (r *cardRepository) Delete(id uint) error {
	result := r.db.Model(&models.Card{}).Scopes(NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
