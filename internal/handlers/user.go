package handlers

import (
	"errors"
	"strconv"

	"bankapi/internal/models"
	"bankapi/internal/services/user"
	"bankapi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// extractUserClaims is a helper to pull validated claims out of the context.
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch users")
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i]))
	}
	return utils.Success(c, fiber.Map{"users": out})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	u, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to fetch user")
	}
	return utils.Success(c, userResponse(u))
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	u, err := h.userService.Update(id, &input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to update user")
	}
	return utils.Success(c, userResponse(u))
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to delete user")
	}
	return utils.Success(c, fiber.Map{"message": "User deleted successfully"})
}
