package model

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// DefaultImage is used for any recipe saved without an image URL
const DefaultImage = "https://images.unsplash.com/photo-1546548970-71785318a17b?w=400&h=300&fit=crop"

// Recipe is a committed recipe held by the store
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Ingredients []string  `json:"ingredients"`
	Steps       string    `json:"steps"`
	Image       string    `json:"image"`
	CookTime    string    `json:"cook_time"`
	Servings    string    `json:"servings"`
	Category    Category  `json:"category"`
}

// Clone returns a copy that does not share the ingredient slice
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := *r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	return &out
}

// Matches reports whether query is a case-insensitive substring of the
// recipe's name, any ingredient, or its category. An empty query matches.
func (r *Recipe) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(string(r.Category)), q)
}

// DraftRecipe is the editable form state before validation. Ingredients
// hold the raw newline-separated text the user typed. IngredientLines carry
// an already structured list; they are used as long as the text is empty or
// still reads exactly as those lines joined by newline.
type DraftRecipe struct {
	Name            string   `json:"name"`
	Ingredients     string   `json:"ingredients"`
	IngredientLines []string `json:"ingredient_lines,omitempty"`
	Steps           string   `json:"steps"`
	Image           string   `json:"image"`
	CookTime        string   `json:"cook_time"`
	Servings        string   `json:"servings"`
	Category        Category `json:"category"`
}

// NewDraft returns the empty form used when adding a recipe
func NewDraft() DraftRecipe {
	return DraftRecipe{Category: DefaultCategory}
}

// DraftFromRecipe seeds an edit form from a committed recipe. The text shows
// the ingredients one per line and the lines keep them as stored.
func DraftFromRecipe(r *Recipe) DraftRecipe {
	return DraftRecipe{
		Name:            r.Name,
		Ingredients:     strings.Join(r.Ingredients, "\n"),
		IngredientLines: slices.Clone(r.Ingredients),
		Steps:           r.Steps,
		Image:           r.Image,
		CookTime:        r.CookTime,
		Servings:        r.Servings,
		Category:        r.Category,
	}
}

// IngredientList returns the ingredients the draft would commit, in order.
// Blank entries are dropped and everything else is kept as written.
func (d DraftRecipe) IngredientList() []string {
	if d.IngredientLines != nil && (d.Ingredients == "" || d.Ingredients == strings.Join(d.IngredientLines, "\n")) {
		return nonBlank(d.IngredientLines)
	}
	return SplitIngredients(d.Ingredients)
}

// SplitIngredients turns raw form text into ingredient lines. Blank lines
// are dropped; order and line content are kept.
func SplitIngredients(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return nonBlank(lines)
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Normalize converts a draft that already passed validation into a Recipe
// with the given id. Text fields are stored as entered; a blank image falls
// back to placeholder.
func (d DraftRecipe) Normalize(id uuid.UUID, placeholder string) *Recipe {
	image := d.Image
	if strings.TrimSpace(image) == "" {
		image = placeholder
	}
	return &Recipe{
		ID:          id,
		Name:        d.Name,
		Ingredients: d.IngredientList(),
		Steps:       d.Steps,
		Image:       image,
		CookTime:    d.CookTime,
		Servings:    d.Servings,
		Category:    d.Category.OrDefault(),
	}
}
