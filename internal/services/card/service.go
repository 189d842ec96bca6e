// Package card owns card lifecycle and balance mutation: issuance, admin
// approval of the issue, top-up and withdrawal.
package card

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/utils"

	"github.com/shopspring/decimal"
)

// numberPrefix is the issuer prefix of every generated card number.
const numberPrefix = "4023"

// Service defines the card service interface.
type Service interface {
	// Balance operations
	TopUp(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error)
	GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error)

	// Lifecycle
	Issue(ctx context.Context, accountID uint) (*models.Card, error)
	ApproveIssue(ctx context.Context, cardID uint) error
	Delete(ctx context.Context, cardID uint) error

	// Read paths
	ListIssued(ctx context.Context) ([]models.Card, error)
	FindByNumber(ctx context.Context, number string) (*models.Card, error)
}

type service struct {
	cards    repositories.CardRepository
	accounts repositories.AccountRepository
}

// NewService creates a new card service.
func NewService(cards repositories.CardRepository, accounts repositories.AccountRepository) Service {
	if cards == nil {
		panic("card repository is required")
	}
	if accounts == nil {
		panic("account repository is required")
	}
	return &service{cards: cards, accounts: accounts}
}

// TopUp increases the balance of an issued, live card.
func (s *service) TopUp(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error) {
	c, err := s.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := Credit(c, amount); err != nil {
		return nil, err
	}

	if err := s.cards.Update(c); err != nil {
		return nil, fmt.Errorf("failed to persist top-up: %w", err)
	}
	return c, nil
}

// Withdraw decreases the balance of an issued, live card. The issued and
// not-deleted checks run before the balance check: a deleted or unissued
// card reports not-found regardless of the amount.
func (s *service) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error) {
	c, err := s.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := Debit(c, amount); err != nil {
		return nil, err
	}

	if err := s.cards.Update(c); err != nil {
		return nil, fmt.Errorf("failed to persist withdrawal: %w", err)
	}
	return c, nil
}

func (s *service) GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	c, err := s.cards.GetIssuedByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return decimal.Zero, ErrCardNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get card: %w", err)
	}
	return c.Balance, nil
}

// Issue generates a new unissued card with a zero balance under the given
// account. The card becomes usable only after ApproveIssue.
func (s *service) Issue(ctx context.Context, accountID uint) (*models.Card, error) {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	c := generateCard(account.ID)
	if err := s.cards.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return c, nil
}

// ApproveIssue flips the issuance flag. A missing, deleted or already issued
// card is rejected.
func (s *service) ApproveIssue(ctx context.Context, cardID uint) error {
	c, err := s.cards.GetByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	if c.IsIssued {
		return ErrAlreadyIssued
	}

	c.IsIssued = true
	if err := s.cards.Update(c); err != nil {
		return fmt.Errorf("failed to approve card issue: %w", err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, cardID uint) error {
	if err := s.cards.Delete(cardID); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func (s *service) ListIssued(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cards.ListIssued()
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// FindByNumber resolves a card number through the issued-and-live read path.
// Missing, deleted and unissued cards are indistinguishable to the caller.
func (s *service) FindByNumber(ctx context.Context, number string) (*models.Card, error) {
	c, err := s.cards.GetIssuedByNumber(number)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return c, nil
}

// generateCard builds an unissued card with a fresh number, a ten year
// expiry and a random CVV.
func generateCard(accountID uint) *models.Card {
	now := time.Now()
	expiry := fmt.Sprintf("%02d/%02d", int(now.Month()), (now.Year()+10)%100)

	return &models.Card{
		Number:     numberPrefix + utils.MustRandomDigits(12),
		ExpireDate: expiry,
		CVV:        utils.MustRandomDigits(3),
		Balance:    decimal.Zero,
		IsIssued:   false,
		AccountID:  accountID,
	}
}
