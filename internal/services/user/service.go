package user

import (
	"errors"
	"fmt"

	"bankapi/internal/models"
	"bankapi/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Service defines the user service interface.
type Service interface {
	GetByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Update(id uint, input *models.UpdateUserInput) (*models.User, error)
	Delete(id uint) error
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service.
func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("user repository is required")
	}
	return &service{repo: repo}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *service) List() ([]models.User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update overwrites every mutable field and re-hashes the password
// unconditionally.
func (s *service) Update(id uint, input *models.UpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Firstname = input.Firstname
	user.Lastname = input.Lastname
	user.Email = input.Email
	user.Password = string(hashed)
	user.Role = input.Role

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *service) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
