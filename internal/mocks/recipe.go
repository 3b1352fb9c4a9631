package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/service"
)

var _ service.IRecipeStore = (*MockRecipeStore)(nil)

// MockRecipeStore is a mock implementation of the recipe store
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) List() []*model.Recipe {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

func (m *MockRecipeStore) Search(query string) []*model.Recipe {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

func (m *MockRecipeStore) Get(id uuid.UUID) (*model.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Add(d model.DraftRecipe) (*model.Recipe, error) {
	args := m.Called(d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Update(id uuid.UUID, d model.DraftRecipe) (*model.Recipe, error) {
	args := m.Called(id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Remove(id uuid.UUID) {
	m.Called(id)
}

func (m *MockRecipeStore) Select(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockRecipeStore) BeginAdd() error {
	return m.Called().Error(0)
}

func (m *MockRecipeStore) BeginEdit(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockRecipeStore) SetDraft(d model.DraftRecipe) error {
	return m.Called(d).Error(0)
}

func (m *MockRecipeStore) Commit() (*model.Recipe, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Cancel() {
	m.Called()
}

func (m *MockRecipeStore) SetSearch(query string) {
	m.Called(query)
}

func (m *MockRecipeStore) Snapshot() service.State {
	return m.Called().Get(0).(service.State)
}
