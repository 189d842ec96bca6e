package handlers

import (
	"errors"

	"bankapi/internal/models"
	"bankapi/internal/services/account"
	"bankapi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.accountService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to fetch accounts")
	}

	out := make([]fiber.Map, 0, len(accounts))
	for i := range accounts {
		out = append(out, accountResponse(&accounts[i]))
	}
	return utils.Success(c, fiber.Map{"accounts": out})
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid account ID")
	}

	a, err := h.accountService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to fetch account")
	}
	return utils.Success(c, accountResponse(a))
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	a, err := h.accountService.Create(c.Context(), userID)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to create account")
	}
	return c.Status(fiber.StatusCreated).JSON(accountResponse(a))
}

func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid account ID")
	}

	if err := h.accountService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return utils.NotFound(c, "Account not found")
		}
		return utils.InternalError(c, "Failed to delete account")
	}
	return utils.Success(c, fiber.Map{"message": "Account deleted successfully"})
}

func accountResponse(a *models.Account) fiber.Map {
	cardIDs := make([]uint, 0, len(a.Cards))
	for _, card := range a.Cards {
		cardIDs = append(cardIDs, card.ID)
	}
	return fiber.Map{
		"id":      a.ID,
		"number":  a.Number,
		"user_id": a.UserID,
		"cards":   cardIDs,
	}
}
