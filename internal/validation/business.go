package validation

import (
	"bankapi/internal/models"

	"github.com/shopspring/decimal"
)

// minAmount is the smallest amount accepted at the request boundary.
var minAmount = decimal.NewFromInt(1)

// UserRegistration validates a registration payload.
func (v *Validator) UserRegistration(input *models.CreateUserInput) {
	v.Required("firstname", input.Firstname)
	v.Required("lastname", input.Lastname)
	v.Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	v.MinLength("password", input.Password, 5)
	v.MaxLength("password", input.Password, 255)
}

// Amount validates a monetary amount: at least 1 unit.
func (v *Validator) Amount(field string, amount decimal.Decimal) {
	v.Check(amount.GreaterThanOrEqual(minAmount), field, "must be at least 1")
}

// MoneyTransfer validates a top-up or withdrawal payload.
func (v *Validator) MoneyTransfer(cardNumber string, amount decimal.Decimal) {
	v.CardNumber("card_number", cardNumber)
	v.Amount("amount", amount)
}

// BankTransaction validates a transfer-commit payload.
func (v *Validator) BankTransaction(sender, receiver string, amount decimal.Decimal) {
	v.CardNumber("sender_card_number", sender)
	v.CardNumber("receiver_card_number", receiver)
	v.Amount("amount", amount)
	v.Check(sender == "" || sender != receiver, "receiver_card_number", "must differ from sender card")
}
