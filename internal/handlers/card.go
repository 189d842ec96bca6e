package handlers

import (
	"errors"

	"bankapi/internal/models"
	"bankapi/internal/services/card"
	"bankapi/internal/utils"
	"bankapi/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// moneyTransferInput is the payload for top-up and withdrawal requests.
type moneyTransferInput struct {
	CardNumber string          `json:"card_number"`
	Amount     decimal.Decimal `json:"amount"`
}

// ListCards returns issued, live cards only; numbers without CVV or balance.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.cardService.ListIssued(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to fetch cards")
	}

	out := make([]fiber.Map, 0, len(cards))
	for i := range cards {
		out = append(out, fiber.Map{
			"id":     cards[i].ID,
			"number": cards[i].Number,
		})
	}
	return utils.Success(c, fiber.Map{"cards": out})
}

func (h *CardHandler) GetCardBalance(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid card ID")
	}

	balance, err := h.cardService.GetBalance(c.Context(), id)
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return utils.NotFound(c, "Card not found")
		}
		return utils.InternalError(c, "Failed to fetch balance")
	}
	return utils.Success(c, fiber.Map{"id": id, "balance": balance})
}

// CreateCard generates a new unissued card under an account. The response is
// the only place the full card details, CVV included, are exposed.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return utils.BadRequest(c, "Invalid account ID")
	}

	created, err := h.cardService.Issue(c.Context(), accountID)
	if err != nil {
		if errors.Is(err, card.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to create card")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          created.ID,
		"number":      created.Number,
		"expire_date": created.ExpireDate,
		"cvv":         created.CVV,
		"balance":     created.Balance,
	})
}

func (h *CardHandler) TopUp(c *fiber.Ctx) error {
	input, done := h.parseMoneyTransfer(c)
	if input == nil {
		return done
	}

	updated, err := h.cardService.TopUp(c.Context(), input.CardNumber, input.Amount)
	if err != nil {
		return h.balanceError(c, err)
	}
	return utils.Success(c, cardBalanceResponse(updated))
}

func (h *CardHandler) Withdraw(c *fiber.Ctx) error {
	input, done := h.parseMoneyTransfer(c)
	if input == nil {
		return done
	}

	updated, err := h.cardService.Withdraw(c.Context(), input.CardNumber, input.Amount)
	if err != nil {
		return h.balanceError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"card_number": updated.Number,
		"balance":     updated.Balance,
	})
}

func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return utils.NotFound(c, "Card not found")
		}
		return utils.InternalError(c, "Failed to delete card")
	}
	return utils.Success(c, fiber.Map{"message": "Card deleted successfully"})
}

// parseMoneyTransfer decodes and validates a transfer payload. On failure the
// error response has been written and the returned input is nil.
func (h *CardHandler) parseMoneyTransfer(c *fiber.Ctx) (*moneyTransferInput, error) {
	var input moneyTransferInput
	if err := c.BodyParser(&input); err != nil {
		return nil, utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.MoneyTransfer(input.CardNumber, input.Amount)
	if !v.Valid() {
		return nil, utils.ValidationErrors(c, v.Errors)
	}
	return &input, nil
}

func (h *CardHandler) balanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, card.ErrCardNotFound):
		return utils.NotFound(c, "Card not found")
	case errors.Is(err, card.ErrInsufficientFunds):
		return utils.BadRequest(c, "Insufficient funds")
	case errors.Is(err, card.ErrInvalidAmount):
		return utils.BadRequest(c, "Invalid amount")
	default:
		return utils.InternalError(c, "Balance operation failed")
	}
}

func cardBalanceResponse(c *models.Card) fiber.Map {
	return fiber.Map{
		"id":          c.ID,
		"number":      c.Number,
		"expire_date": c.ExpireDate,
		"balance":     c.Balance,
	}
}
