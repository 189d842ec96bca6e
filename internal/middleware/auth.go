// Package middleware provides request processing middleware for the fiber
// web framework: token validation and role/permission gates.
package middleware

import (
	"log"
	"strings"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and adds the user claims to the
// request context.
type AuthMiddleware struct {
	tokens utils.TokenConfig
	users  repositories.UserRepository
}

func NewAuthMiddleware(tokens utils.TokenConfig, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Handler checks for a Bearer token, verifies the signature and expiry, and
// rejects tokens whose user no longer exists or has been soft-deleted.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseToken(m.tokens, tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if _, err := m.users.GetByID(claims.UserID); err != nil {
		log.Printf("user %d from token not found", claims.UserID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}

// AdminAuthMiddleware verifies that the request has valid admin claims.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	if claims.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}

	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		// Admins pass every permission gate.
		if claims.Role == models.RoleAdmin {
			return c.Next()
		}

		if claims.HasPermission(permission) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}
}
