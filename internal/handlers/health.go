package handlers

import (
	"bankapi/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
		dbStatus = "unavailable"
	}

	redisStatus := "connected"
	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "ok"
	if dbStatus != "connected" {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overall,
		"version": "1.0.0",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
