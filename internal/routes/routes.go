// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and applies
// the authentication and permission middleware per route group.
package routes

import (
	"time"

	"bankapi/internal/config"
	"bankapi/internal/handlers"
	"bankapi/internal/middleware"
	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/services/account"
	"bankapi/internal/services/auth"
	"bankapi/internal/services/card"
	"bankapi/internal/services/transaction"
	"bankapi/internal/services/user"
	"bankapi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	accountRepo := repositories.NewAccountRepository(repositories.DB)
	cardRepo := repositories.NewCardRepository(repositories.DB)
	txnRepo := repositories.NewBankTransactionRepository(repositories.DB)

	// Token signing configuration is built once and passed by value; nothing
	// can rebind the secret after startup.
	tokens := utils.TokenConfig{
		Secret:     config.GetEnv("JWT_SECRET", "bankapi-dev-secret"),
		Issuer:     config.GetEnv("JWT_ISSUER", "bankapi"),
		AccessTTL:  config.GetDurationEnv("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL: config.GetDurationEnv("JWT_REFRESH_TTL", 7*24*time.Hour),
	}

	// Services
	authService := auth.NewService(userRepo, tokens)
	userService := user.NewService(userRepo)
	accountService := account.NewService(accountRepo, userRepo)
	cardService := card.NewService(cardRepo, accountRepo)
	txnService := transaction.NewService(txnRepo, cardService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	cardHandler := handlers.NewCardHandler(cardService)
	txnHandler := handlers.NewTransactionHandler(txnService)
	adminHandler := handlers.NewAdminHandler(cardService, txnService)

	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1")

	// Public endpoints
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)

	// Protected routes
	protected := api.Use(authMiddleware.Handler)

	users := protected.Group("/users")
	users.Get("/", middleware.HasPermission(models.PermissionUserRead), userHandler.ListUsers)
	users.Get("/:id", middleware.HasPermission(models.PermissionUserRead), userHandler.GetUser)
	users.Put("/:id", middleware.HasPermission(models.PermissionUserWrite), userHandler.UpdateUser)
	users.Delete("/:id", middleware.HasPermission(models.PermissionUserWrite), userHandler.DeleteUser)

	accounts := protected.Group("/accounts")
	accounts.Get("/", middleware.HasPermission(models.PermissionAccountRead), accountHandler.ListAccounts)
	accounts.Get("/:id", middleware.HasPermission(models.PermissionAccountRead), accountHandler.GetAccount)
	accounts.Post("/:userId", middleware.HasPermission(models.PermissionAccountWrite), accountHandler.CreateAccount)
	accounts.Delete("/:id", middleware.HasPermission(models.PermissionAccountWrite), accountHandler.DeleteAccount)

	cards := protected.Group("/cards")
	cards.Get("/", middleware.HasPermission(models.PermissionCardRead), cardHandler.ListCards)
	cards.Get("/:id/balance", middleware.HasPermission(models.PermissionCardRead), cardHandler.GetCardBalance)
	cards.Post("/topup", middleware.HasPermission(models.PermissionCardWrite), cardHandler.TopUp)
	cards.Post("/withdraw", middleware.HasPermission(models.PermissionCardWrite), cardHandler.Withdraw)
	cards.Post("/:accountId", middleware.HasPermission(models.PermissionCardWrite), cardHandler.CreateCard)
	cards.Delete("/:id", middleware.HasPermission(models.PermissionCardWrite), cardHandler.DeleteCard)

	transactions := protected.Group("/transactions")
	transactions.Post("/commit", middleware.HasPermission(models.PermissionTransactionWrite), txnHandler.CommitTransaction)

	// Admin approvals
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Post("/approve/transaction/:id", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.ApproveTransaction)
	admin.Post("/approve/card/:id", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.ApproveCardIssue)
}
