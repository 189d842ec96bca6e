package repositories

import (
	"context"
	"errors"
	"log"

	"bankapi/internal/models"
	"bankapi/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	// Try cache first
	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if user, err := r.cache.GetUser(context.Background(), key); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.Scopes(NotDeleted).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(context.Background(), &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(NotDeleted).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(user.ID)
	return nil
}

// Delete soft-deletes the user; the row stays in the table.
func (r *userRepository) Delete(id uint) error {
	result := r.db.Model(&models.User{}).Scopes(NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	r.invalidate(id)
	return nil
}

func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(NotDeleted).Find(&users).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return users, nil
}

func (r *userRepository) invalidate(userID uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("failed to invalidate user cache %d: %v", userID, err)
	}
}
