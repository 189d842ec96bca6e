package transaction

import (
	"context"
	"testing"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/services/card"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTxnRepository struct {
	mock.Mock
	// txCards is handed to the callback as the transaction-bound card
	// repository.
	txCards repositories.CardRepository
}

func (m *MockTxnRepository) Create(txn *models.BankTransaction) error {
	args := m.Called(txn)
	return args.Error(0)
}

func (m *MockTxnRepository) GetPendingByID(id uint) (*models.BankTransaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BankTransaction), args.Error(1)
}

func (m *MockTxnRepository) Update(txn *models.BankTransaction) error {
	args := m.Called(txn)
	return args.Error(0)
}

func (m *MockTxnRepository) ExecuteInTransaction(fn func(repositories.BankTransactionRepository, repositories.CardRepository) error) error {
	return fn(m, m.txCards)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(c *models.Card) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(id uint) (*models.Card, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) GetIssuedByID(id uint) (*models.Card, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) GetIssuedByNumber(number string) (*models.Card, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) Update(c *models.Card) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCardRepository) ListIssued() ([]models.Card, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) TopUp(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error) {
	args := m.Called(ctx, number, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*models.Card, error) {
	args := m.Called(ctx, number, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCardService) Issue(ctx context.Context, accountID uint) (*models.Card, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) ApproveIssue(ctx context.Context, cardID uint) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCardService) Delete(ctx context.Context, cardID uint) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCardService) ListIssued(ctx context.Context) ([]models.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardService) FindByNumber(ctx context.Context, number string) (*models.Card, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

const (
	senderNumber   = "4023000000000001"
	receiverNumber = "4023000000000002"
)

func issuedCard(number, balance string) *models.Card {
	return &models.Card{
		Number:   number,
		Balance:  decimal.RequireFromString(balance),
		IsIssued: true,
	}
}

func TestTransactionService_Commit(t *testing.T) {
	t.Run("records a pending transfer with a reference", func(t *testing.T) {
		repo := new(MockTxnRepository)
		cards := new(MockCardService)
		cards.On("FindByNumber", mock.Anything, senderNumber).Return(issuedCard(senderNumber, "100"), nil)
		cards.On("FindByNumber", mock.Anything, receiverNumber).Return(issuedCard(receiverNumber, "0"), nil)
		repo.On("Create", mock.Anything).Return(nil)

		s := NewService(repo, cards)
		txn, err := s.Commit(context.Background(), senderNumber, receiverNumber, decimal.NewFromInt(25))

		assert.NoError(t, err)
		assert.False(t, txn.IsCompleted)
		assert.NotEmpty(t, txn.Reference)
		assert.Equal(t, senderNumber, txn.SenderCardNumber)
		assert.Equal(t, receiverNumber, txn.ReceiverCardNumber)
		repo.AssertExpectations(t)
	})

	t.Run("unresolvable sender records nothing", func(t *testing.T) {
		repo := new(MockTxnRepository)
		cards := new(MockCardService)
		cards.On("FindByNumber", mock.Anything, senderNumber).Return(nil, card.ErrCardNotFound)

		s := NewService(repo, cards)
		_, err := s.Commit(context.Background(), senderNumber, receiverNumber, decimal.NewFromInt(25))

		assert.ErrorIs(t, err, ErrCardUnavailable)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unresolvable receiver records nothing", func(t *testing.T) {
		repo := new(MockTxnRepository)
		cards := new(MockCardService)
		cards.On("FindByNumber", mock.Anything, senderNumber).Return(issuedCard(senderNumber, "100"), nil)
		cards.On("FindByNumber", mock.Anything, receiverNumber).Return(nil, card.ErrCardNotFound)

		s := NewService(repo, cards)
		_, err := s.Commit(context.Background(), senderNumber, receiverNumber, decimal.NewFromInt(25))

		assert.ErrorIs(t, err, ErrCardUnavailable)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestTransactionService_Approve(t *testing.T) {
	pendingTxn := func(amount string) *models.BankTransaction {
		return &models.BankTransaction{
			Base:               models.Base{ID: 1},
			Reference:          "ref-1",
			Amount:             decimal.RequireFromString(amount),
			SenderCardNumber:   senderNumber,
			ReceiverCardNumber: receiverNumber,
		}
	}

	t.Run("settles funds and completes the transaction", func(t *testing.T) {
		txCards := new(MockCardRepository)
		repo := &MockTxnRepository{txCards: txCards}
		cards := new(MockCardService)

		sender := issuedCard(senderNumber, "10000.50")
		receiver := issuedCard(receiverNumber, "0")
		txn := pendingTxn("10000.50")

		repo.On("GetPendingByID", uint(1)).Return(txn, nil)
		txCards.On("GetIssuedByNumber", senderNumber).Return(sender, nil)
		txCards.On("GetIssuedByNumber", receiverNumber).Return(receiver, nil)
		txCards.On("Update", sender).Return(nil)
		txCards.On("Update", receiver).Return(nil)
		repo.On("Update", txn).Return(nil)

		s := NewService(repo, cards)
		err := s.Approve(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, sender.Balance.IsZero())
		assert.True(t, receiver.Balance.Equal(decimal.RequireFromString("10000.50")))
		assert.True(t, txn.IsCompleted)
		repo.AssertExpectations(t)
		txCards.AssertExpectations(t)
	})

	t.Run("insufficient funds leaves the transaction pending", func(t *testing.T) {
		txCards := new(MockCardRepository)
		repo := &MockTxnRepository{txCards: txCards}
		cards := new(MockCardService)

		sender := issuedCard(senderNumber, "5")
		receiver := issuedCard(receiverNumber, "0")
		txn := pendingTxn("10")

		repo.On("GetPendingByID", uint(1)).Return(txn, nil)
		txCards.On("GetIssuedByNumber", senderNumber).Return(sender, nil)
		txCards.On("GetIssuedByNumber", receiverNumber).Return(receiver, nil)

		s := NewService(repo, cards)
		err := s.Approve(context.Background(), 1)

		assert.ErrorIs(t, err, card.ErrInsufficientFunds)
		assert.False(t, txn.IsCompleted)
		assert.True(t, sender.Balance.Equal(decimal.NewFromInt(5)))
		assert.True(t, receiver.Balance.IsZero())
		txCards.AssertNotCalled(t, "Update", mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("card deleted since commit fails the approval", func(t *testing.T) {
		txCards := new(MockCardRepository)
		repo := &MockTxnRepository{txCards: txCards}
		cards := new(MockCardService)

		txn := pendingTxn("10")
		repo.On("GetPendingByID", uint(1)).Return(txn, nil)
		txCards.On("GetIssuedByNumber", senderNumber).Return(nil, repositories.ErrCardNotFound)

		s := NewService(repo, cards)
		err := s.Approve(context.Background(), 1)

		assert.ErrorIs(t, err, ErrTransferFailed)
		assert.False(t, txn.IsCompleted)
	})

	t.Run("completed transaction cannot be approved again", func(t *testing.T) {
		repo := new(MockTxnRepository)
		cards := new(MockCardService)
		repo.On("GetPendingByID", uint(1)).Return(nil, repositories.ErrTransactionNotFound)

		s := NewService(repo, cards)
		err := s.Approve(context.Background(), 1)

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}
