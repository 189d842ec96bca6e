// Package transaction owns the two-phase transfer protocol: commit records
// the intent to move funds, approve settles it.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/services/card"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the bank transaction service interface.
type Service interface {
	// Commit validates both card numbers and persists a pending transfer.
	// No funds move at this step.
	Commit(ctx context.Context, senderNumber, receiverNumber string, amount decimal.Decimal) (*models.BankTransaction, error)

	// Approve settles a pending transfer: debit the sender, credit the
	// receiver, mark the transaction completed. A failed approval leaves the
	// transaction pending and may be retried.
	Approve(ctx context.Context, id uint) error
}

type service struct {
	repo  repositories.BankTransactionRepository
	cards card.Service
}

// NewService creates a new bank transaction service.
func NewService(repo repositories.BankTransactionRepository, cards card.Service) Service {
	if repo == nil {
		panic("bank transaction repository is required")
	}
	if cards == nil {
		panic("card service is required")
	}
	return &service{repo: repo, cards: cards}
}

func (s *service) Commit(ctx context.Context, senderNumber, receiverNumber string, amount decimal.Decimal) (*models.BankTransaction, error) {
	// Both numbers must resolve through the issued-and-live read path before
	// any intent is recorded.
	if _, err := s.cards.FindByNumber(ctx, senderNumber); err != nil {
		return nil, fmt.Errorf("sender %w", ErrCardUnavailable)
	}
	if _, err := s.cards.FindByNumber(ctx, receiverNumber); err != nil {
		return nil, fmt.Errorf("receiver %w", ErrCardUnavailable)
	}

	txn := &models.BankTransaction{
		Reference:          uuid.NewString(),
		Amount:             amount,
		SenderCardNumber:   senderNumber,
		ReceiverCardNumber: receiverNumber,
		IsCompleted:        false,
	}

	if err := s.repo.Create(txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return txn, nil
}

func (s *service) Approve(ctx context.Context, id uint) error {
	txn, err := s.repo.GetPendingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	// The debit, the credit and the completion flag are one atomic unit: if
	// any step fails the whole approval rolls back and the transaction stays
	// pending. Card state is re-validated here against the denormalized
	// number snapshots; a card deleted since commit fails the approval.
	err = s.repo.ExecuteInTransaction(func(txns repositories.BankTransactionRepository, cards repositories.CardRepository) error {
		sender, err := cards.GetIssuedByNumber(txn.SenderCardNumber)
		if err != nil {
			return fmt.Errorf("sender card: %w", err)
		}
		receiver, err := cards.GetIssuedByNumber(txn.ReceiverCardNumber)
		if err != nil {
			return fmt.Errorf("receiver card: %w", err)
		}

		// Debit before credit; order is fixed.
		if err := card.Debit(sender, txn.Amount); err != nil {
			return err
		}
		if err := card.Credit(receiver, txn.Amount); err != nil {
			return err
		}

		if err := cards.Update(sender); err != nil {
			return err
		}
		if err := cards.Update(receiver); err != nil {
			return err
		}

		txn.IsCompleted = true
		return txns.Update(txn)
	})
	if err != nil {
		if errors.Is(err, card.ErrInsufficientFunds) {
			return card.ErrInsufficientFunds
		}
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	return nil
}
