package types

import (
	"encoding/json"
	"errors"

	"github.com/pageza/recipebook/backend/internal/model"
)

// IngredientInput is the ingredients field of a recipe form. Clients send
// either newline-separated text or an array of lines; an array is kept as
// given.
type IngredientInput struct {
	Text  string
	Lines []string
}

// UnmarshalJSON accepts a string or an array of strings
func (in *IngredientInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*in = IngredientInput{Text: s}
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return errors.New("ingredients must be a string or an array of strings")
	}
	if lines == nil {
		lines = []string{}
	}
	*in = IngredientInput{Lines: lines}
	return nil
}

// RecipeRequest represents the request body for creating or updating a
// recipe, and for replacing the session draft
type RecipeRequest struct {
	Name        string          `json:"name"`
	Ingredients IngredientInput `json:"ingredients"`
	Steps       string          `json:"steps"`
	Image       string          `json:"image"`
	CookTime    string          `json:"cook_time"`
	Servings    string          `json:"servings"`
	Category    string          `json:"category"`
}

// Draft converts the request into a draft. Only an unknown category fails;
// required fields are left to the store's validation.
func (r RecipeRequest) Draft() (model.DraftRecipe, error) {
	category, err := model.ParseCategory(r.Category)
	if err != nil {
		return model.DraftRecipe{}, err
	}
	return model.DraftRecipe{
		Name:            r.Name,
		Ingredients:     r.Ingredients.Text,
		IngredientLines: r.Ingredients.Lines,
		Steps:           r.Steps,
		Image:           r.Image,
		CookTime:        r.CookTime,
		Servings:        r.Servings,
		Category:        category,
	}, nil
}

// SelectionRequest opens a recipe for viewing. A null or missing id closes
// the detail view.
type SelectionRequest struct {
	ID *string `json:"id"`
}

// SearchRequest sets the session's search text
type SearchRequest struct {
	Query string `json:"query"`
}
