package service

import (
	"github.com/google/uuid"
	"github.com/pageza/recipebook/backend/internal/model"
)

// Mode is the UI-facing mode of the store. Exactly one applies at a time.
type Mode string

const (
	ModeBrowsing Mode = "browsing"
	ModeViewing  Mode = "viewing"
	ModeAdding   Mode = "adding"
	ModeEditing  Mode = "editing"
)

// State is a read-only copy of everything the presentation layer renders
type State struct {
	Mode      Mode               `json:"mode"`
	Selection *model.Recipe      `json:"selection"`
	Draft     *model.DraftRecipe `json:"draft"`
	EditingID *uuid.UUID         `json:"editing_id"`
	Errors    ValidationErrors   `json:"errors"`
	Search    string             `json:"search"`
	Results   []*model.Recipe    `json:"results"`
	Total     int                `json:"total"`
}
