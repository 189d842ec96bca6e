package handlers

import (
	"errors"

	"bankapi/internal/services/transaction"
	"bankapi/internal/utils"
	"bankapi/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	txnService transaction.Service
}

func NewTransactionHandler(txnService transaction.Service) *TransactionHandler {
	return &TransactionHandler{txnService: txnService}
}

type commitTransactionInput struct {
	SenderCardNumber   string          `json:"sender_card_number"`
	ReceiverCardNumber string          `json:"receiver_card_number"`
	Amount             decimal.Decimal `json:"amount"`
}

// CommitTransaction records a pending transfer between two cards. Funds do
// not move until an admin approves it.
func (h *TransactionHandler) CommitTransaction(c *fiber.Ctx) error {
	var input commitTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.BankTransaction(input.SenderCardNumber, input.ReceiverCardNumber, input.Amount)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	txn, err := h.txnService.Commit(c.Context(), input.SenderCardNumber, input.ReceiverCardNumber, input.Amount)
	if err != nil {
		if errors.Is(err, transaction.ErrCardUnavailable) {
			return utils.BadRequest(c, "Card is unavailable for transfers")
		}
		return utils.InternalError(c, "Failed to commit transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":                   txn.ID,
		"reference":            txn.Reference,
		"amount":               txn.Amount,
		"sender_card_number":   txn.SenderCardNumber,
		"receiver_card_number": txn.ReceiverCardNumber,
		"is_completed":         txn.IsCompleted,
	})
}
