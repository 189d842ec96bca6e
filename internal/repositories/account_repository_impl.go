package repositories

import (
	"errors"

	"bankapi/internal/models"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *accountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.Scopes(NotDeleted).
		Preload("Cards", NotDeleted).
		First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &account, nil
}

func (r *accountRepository) List() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Scopes(NotDeleted).
		Preload("Cards", NotDeleted).
		Find(&accounts).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return accounts, nil
}

func (r *accountRepository) Delete(id uint) error {
	result := r.db.Model(&models.Account{}).Scopes(NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
