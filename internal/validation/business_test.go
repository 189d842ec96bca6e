package validation

import (
	"testing"

	"bankapi/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserRegistration(t *testing.T) {
	tests := []struct {
		name      string
		input     *models.CreateUserInput
		wantValid bool
		wantField string
	}{
		{
			name: "valid payload",
			input: &models.CreateUserInput{
				Firstname: "Jane", Lastname: "Doe",
				Email: "jane@example.com", Password: "s3cretpass",
			},
			wantValid: true,
		},
		{
			name: "malformed email",
			input: &models.CreateUserInput{
				Firstname: "Jane", Lastname: "Doe",
				Email: "not-an-email", Password: "s3cretpass",
			},
			wantField: "email",
		},
		{
			name: "password too short",
			input: &models.CreateUserInput{
				Firstname: "Jane", Lastname: "Doe",
				Email: "jane@example.com", Password: "abc",
			},
			wantField: "password",
		},
		{
			name:      "missing names",
			input:     &models.CreateUserInput{Email: "jane@example.com", Password: "s3cretpass"},
			wantField: "firstname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.UserRegistration(tt.input)
			assert.Equal(t, tt.wantValid, v.Valid())
			if tt.wantField != "" {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}
}

func TestMoneyTransfer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := New()
		v.MoneyTransfer("4023000000000001", decimal.RequireFromString("10.50"))
		assert.True(t, v.Valid())
	})

	t.Run("short card number", func(t *testing.T) {
		v := New()
		v.MoneyTransfer("4023", decimal.NewFromInt(10))
		assert.Contains(t, v.Errors, "card_number")
	})

	t.Run("amount below one", func(t *testing.T) {
		v := New()
		v.MoneyTransfer("4023000000000001", decimal.RequireFromString("0.99"))
		assert.Contains(t, v.Errors, "amount")
	})

	t.Run("amount of exactly one accepted", func(t *testing.T) {
		v := New()
		v.MoneyTransfer("4023000000000001", decimal.NewFromInt(1))
		assert.True(t, v.Valid())
	})
}

func TestBankTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := New()
		v.BankTransaction("4023000000000001", "4023000000000002", decimal.NewFromInt(25))
		assert.True(t, v.Valid())
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		v := New()
		v.BankTransaction("4023000000000001", "4023000000000001", decimal.NewFromInt(25))
		assert.Contains(t, v.Errors, "receiver_card_number")
	})

	t.Run("both numbers validated", func(t *testing.T) {
		v := New()
		v.BankTransaction("bogus", "also-bogus", decimal.NewFromInt(25))
		assert.Contains(t, v.Errors, "sender_card_number")
		assert.Contains(t, v.Errors, "receiver_card_number")
	})
}
