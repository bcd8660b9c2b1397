package service_test

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(u *model.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(u *model.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) ListAll() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBlacklistRepository is a mock implementation of repository.BlacklistRepository.
type MockBlacklistRepository struct {
	mock.Mock
}

func (m *MockBlacklistRepository) Add(token *model.BlacklistedToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockBlacklistRepository) IsBlacklisted(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlacklistRepository) RemoveExpired(before time.Time) error {
	args := m.Called(before)
	return args.Error(0)
}

// MockShoppingListRepository is a mock implementation of repository.ShoppingListRepository.
type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) Create(l *model.ShoppingList) error {
	args := m.Called(l)
	return args.Error(0)
}

func (m *MockShoppingListRepository) FindByID(id uint) (*model.ShoppingList, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListRepository) ListByUser(userID uint, titleQuery string, p *repository.Pagination) ([]model.ShoppingList, error) {
	args := m.Called(userID, titleQuery, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListRepository) Update(l *model.ShoppingList) error {
	args := m.Called(l)
	return args.Error(0)
}

func (m *MockShoppingListRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockShoppingItemRepository is a mock implementation of repository.ShoppingItemRepository.
type MockShoppingItemRepository struct {
	mock.Mock
}

func (m *MockShoppingItemRepository) Create(i *model.ShoppingItem) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockShoppingItemRepository) FindByID(id uint) (*model.ShoppingItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingItem), args.Error(1)
}

func (m *MockShoppingItemRepository) ListByList(listID uint, nameQuery string, p *repository.Pagination) ([]model.ShoppingItem, error) {
	args := m.Called(listID, nameQuery, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingItem), args.Error(1)
}

func (m *MockShoppingItemRepository) Update(i *model.ShoppingItem) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockShoppingItemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
