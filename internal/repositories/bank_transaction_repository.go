package repositories

import (
	"errors"

	"bankapi/internal/models"
)

var ErrTransactionNotFound = errors.New("bank transaction not found")

// BankTransactionRepository defines transfer-record database operations.
type BankTransactionRepository interface {
	Create(txn *models.BankTransaction) error
	// GetPendingByID returns the transaction only while it has not been
	// completed; completed transactions report not-found so an approval can
	// run at most once.
	GetPendingByID(id uint) (*models.BankTransaction, error)
	Update(txn *models.BankTransaction) error

	// ExecuteInTransaction runs fn inside a single database transaction,
	// handing it repositories bound to that transaction. Any error rolls the
	// whole unit back.
	ExecuteInTransaction(fn func(txns BankTransactionRepository, cards CardRepository) error) error
}
