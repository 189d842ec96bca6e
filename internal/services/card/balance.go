package card

import (
	"bankapi/internal/models"

	"github.com/shopspring/decimal"
)

// Credit and Debit are the only two places balance rules live. Every path
// that moves money, HTTP or transfer approval, goes through them.

// Credit increases the card balance by amount. The card must be live and
// issued; amount must be positive.
func Credit(c *models.Card, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.IsDeleted || !c.IsIssued {
		return ErrCardNotFound
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// Debit decreases the card balance by amount. The card must be live and
// issued, and the balance may never go negative: an overdraft is rejected,
// not clamped, and the card is left unchanged.
func Debit(c *models.Card, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.IsDeleted || !c.IsIssued {
		return ErrCardNotFound
	}
	if c.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
