package handlers

import (
	"errors"

	"bankapi/internal/models"
	"bankapi/internal/services/auth"
	"bankapi/internal/utils"
	"bankapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles new user registration and returns JWT tokens.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.UserRegistration(&input)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	user, access, refresh, err := h.authService.Register(&input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userResponse(user),
	})
}

// Login handles user authentication and returns JWT tokens.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	user, access, refresh, err := h.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userResponse(user),
	})
}

// Refresh re-issues a token pair from a refresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.Unauthorized(c, "Refresh token not provided")
	}

	access, refresh, err := h.authService.Refresh(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"email":     user.Email,
		"role":      user.Role,
	}
}
