package repositories

import (
	"errors"

	"bankapi/internal/models"

	"gorm.io/gorm"
)

type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new instance of BankTransactionRepository.
func NewBankTransactionRepository(db *gorm.DB) BankTransactionRepository {
	return &bankTransactionRepository{db: db}
}

func (r *bankTransactionRepository) Create(txn *models.BankTransaction) error {
	if err := r.db.Create(txn).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *bankTransactionRepository) GetPendingByID(id uint) (*models.BankTransaction, error) {
	var txn models.BankTransaction
	err := r.db.Scopes(NotDeleted).
		Where("is_completed = ?", false).
		First(&txn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &txn, nil
}

func (r *bankTransactionRepository) Update(txn *models.BankTransaction) error {
	if err := r.db.Save(txn).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *bankTransactionRepository) ExecuteInTransaction(fn func(BankTransactionRepository, CardRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewBankTransactionRepository(tx), NewCardRepository(tx))
	})
}
