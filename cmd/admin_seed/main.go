// Command admin_seed creates the initial administrator account from the
// ADMIN_EMAIL and ADMIN_PASSWORD environment variables. Running it twice is
// safe: an existing admin is left untouched.
package main

import (
	"context"
	"log"
	"os"

	"bankapi/internal/config"
	"bankapi/internal/models"
	"bankapi/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	var existing models.User
	if err := repositories.DB.Scopes(repositories.NotDeleted).
		Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Firstname: config.GetEnv("ADMIN_FIRSTNAME", "System"),
		Lastname:  config.GetEnv("ADMIN_LASTNAME", "Administrator"),
		Email:     adminEmail,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
	}

	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	if repositories.CacheService != nil {
		if err := repositories.CacheService.InvalidateUser(context.Background(), admin.ID); err != nil {
			log.Printf("Failed to invalidate user cache: %v", err)
		}
	}

	log.Println("Admin account created successfully")
}
