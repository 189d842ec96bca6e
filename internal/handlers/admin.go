package handlers

import (
	"errors"

	"bankapi/internal/services/card"
	"bankapi/internal/services/transaction"
	"bankapi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler groups the approval endpoints reserved to administrators.
type AdminHandler struct {
	cardService card.Service
	txnService  transaction.Service
}

func NewAdminHandler(cardService card.Service, txnService transaction.Service) *AdminHandler {
	return &AdminHandler{cardService: cardService, txnService: txnService}
}

// ApproveTransaction settles a pending transfer. Approvals are idempotent in
// the sense that a completed transaction can no longer be found pending.
func (h *AdminHandler) ApproveTransaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid transaction ID")
	}

	if err := h.txnService.Approve(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, transaction.ErrTransactionNotFound):
			return utils.NotFound(c, "Pending transaction not found")
		case errors.Is(err, card.ErrInsufficientFunds):
			return utils.BadRequest(c, "Insufficient funds on sender card")
		case errors.Is(err, transaction.ErrTransferFailed):
			return utils.BadRequest(c, "Transfer could not be settled")
		default:
			return utils.InternalError(c, "Failed to approve transaction")
		}
	}
	return utils.Success(c, fiber.Map{"message": "Transaction approved"})
}

// ApproveCardIssue marks a created card as issued and usable.
func (h *AdminHandler) ApproveCardIssue(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.ApproveIssue(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, card.ErrCardNotFound):
			return utils.NotFound(c, "Card not found")
		case errors.Is(err, card.ErrAlreadyIssued):
			return utils.BadRequest(c, "Card is already issued")
		default:
			return utils.InternalError(c, "Failed to approve card issue")
		}
	}
	return utils.Success(c, fiber.Map{"message": "Card issue approved"})
}
