package account

import (
	"context"
	"regexp"
	"testing"

	"bankapi/internal/models"
	"bankapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(id uint) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) List() ([]models.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestAccountService_Create(t *testing.T) {
	t.Run("assigns a 20 digit number to a live user", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		users := new(MockUserRepository)
		users.On("GetByID", uint(5)).Return(&models.User{Base: models.Base{ID: 5}}, nil)
		accounts.On("Create", mock.Anything).Return(nil)

		s := NewService(accounts, users)
		account, err := s.Create(context.Background(), 5)

		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{20}$`), account.Number)
		assert.Equal(t, uint(5), account.UserID)
		accounts.AssertExpectations(t)
	})

	t.Run("deleted or missing user rejected", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		users := new(MockUserRepository)
		users.On("GetByID", uint(9)).Return(nil, repositories.ErrUserNotFound)

		s := NewService(accounts, users)
		_, err := s.Create(context.Background(), 9)

		assert.ErrorIs(t, err, ErrUserNotFound)
		accounts.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestAccountService_Delete(t *testing.T) {
	t.Run("missing account", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		users := new(MockUserRepository)
		accounts.On("Delete", uint(2)).Return(repositories.ErrAccountNotFound)

		s := NewService(accounts, users)
		assert.ErrorIs(t, s.Delete(context.Background(), 2), ErrAccountNotFound)
	})
}
