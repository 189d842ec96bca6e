// Package repositories provides the data access layer. All reads go through
// the NotDeleted scope so soft-deleted rows are invisible everywhere.
package repositories

import (
	"log"
	"os"
	"time"

	"bankapi/internal/config"
	"bankapi/internal/models"
	"bankapi/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the global Redis-backed cache.
var CacheService *cache.CacheService

// InitDB initializes the PostgreSQL connection and the Redis cache, applies
// migrations and configures the connection pool.
func InitDB() error {
	initPostgres()

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewCacheService(redisClient, 24*time.Hour)

	return DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Card{},
		&models.BankTransaction{},
	)
}

func initPostgres() {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "bankapi") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour))
	sqlDB.SetConnMaxIdleTime(config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	// Keep "record not found" out of the error log; it is an expected outcome
	// on every miss.
	db.Logger = logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	log.Println("PostgreSQL connected")
}

// NotDeleted is the soft-delete filter applied by every repository read.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
