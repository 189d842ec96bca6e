// Package account provides account CRUD on top of the user entity graph.
package account

import (
	"context"
	"errors"
	"fmt"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/utils"
)

// Service errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Service defines the account service interface.
type Service interface {
	Create(ctx context.Context, userID uint) (*models.Account, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	accounts repositories.AccountRepository
	users    repositories.UserRepository
}

// NewService creates a new account service.
func NewService(accounts repositories.AccountRepository, users repositories.UserRepository) Service {
	if accounts == nil {
		panic("account repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	return &service{accounts: accounts, users: users}
}

// Create opens an account for an existing, live user and assigns it a fresh
// 20-digit number.
func (s *service) Create(ctx context.Context, userID uint) (*models.Account, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	account := &models.Account{
		Number: utils.MustRandomDigits(20),
		UserID: user.ID,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	account, err := s.accounts.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *service) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.accounts.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
