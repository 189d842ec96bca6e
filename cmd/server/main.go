// Package main is the entry point for the banking API server.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"bankapi/internal/config"
	"bankapi/internal/repositories"
	"bankapi/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Successfully connected to database with connection pooling")

	// Periodic connection pool stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	// Stale cache entries from a previous run are dropped on startup.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush Redis cache: %v", err)
		} else {
			log.Println("Redis cache flushed on startup")
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Credential endpoints are rate limited per client IP.
	for _, path := range []string{"/api/v1/auth/register", "/api/v1/auth/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
