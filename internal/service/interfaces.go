package service

import (
	"github.com/google/uuid"
	"github.com/pageza/recipebook/backend/internal/model"
)

// IRecipeStore defines the operations the presentation layer may call
type IRecipeStore interface {
	List() []*model.Recipe
	Search(query string) []*model.Recipe
	Get(id uuid.UUID) (*model.Recipe, error)
	Add(d model.DraftRecipe) (*model.Recipe, error)
	Update(id uuid.UUID, d model.DraftRecipe) (*model.Recipe, error)
	Remove(id uuid.UUID)
	Select(id uuid.UUID) error

	// Form session
	BeginAdd() error
	BeginEdit(id uuid.UUID) error
	SetDraft(d model.DraftRecipe) error
	Commit() (*model.Recipe, error)
	Cancel()
	SetSearch(query string)
	Snapshot() State
}
