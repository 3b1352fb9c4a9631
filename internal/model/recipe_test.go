package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIngredients(t *testing.T) {
	assert.Equal(t, []string{"2 cups flour", "1 tsp salt"}, SplitIngredients("2 cups flour\n\n1 tsp salt"))
	assert.Equal(t, []string{"  a  ", " b"}, SplitIngredients("  a  \r\n\t\n b"))
	assert.Empty(t, SplitIngredients(" \n \n"))
}

func TestIngredientList(t *testing.T) {
	lines := []string{"  2 cups flour  ", "a\nb", " "}

	d := DraftRecipe{IngredientLines: lines}
	assert.Equal(t, []string{"  2 cups flour  ", "a\nb"}, d.IngredientList(), "lines pass through")

	d = DraftRecipe{Ingredients: "x\ny", IngredientLines: []string{"x", "y"}}
	assert.Equal(t, []string{"x", "y"}, d.IngredientList())

	// Edited text wins over stale lines
	d = DraftRecipe{Ingredients: "x\nz", IngredientLines: []string{"x", "y"}}
	assert.Equal(t, []string{"x", "z"}, d.IngredientList())

	d = DraftRecipe{IngredientLines: []string{}}
	assert.Empty(t, d.IngredientList())
}

func TestNormalize(t *testing.T) {
	id := uuid.New()
	d := DraftRecipe{
		Name:        "  Lemonade ",
		Ingredients: "lemons\n\nsugar\nwater\n",
		Steps:       " Stir. ",
		CookTime:    "5 min",
		Servings:    "4",
		Category:    "beverage",
	}

	r := d.Normalize(id, DefaultImage)
	assert.Equal(t, &Recipe{
		ID:          id,
		Name:        "  Lemonade ",
		Ingredients: []string{"lemons", "sugar", "water"},
		Steps:       " Stir. ",
		Image:       DefaultImage,
		CookTime:    "5 min",
		Servings:    "4",
		Category:    CategoryBeverage,
	}, r)
}

func TestDraftFromRecipeRoundTrip(t *testing.T) {
	r := &Recipe{
		ID:          uuid.New(),
		Name:        "Nachos",
		Ingredients: []string{"chips", "cheese"},
		Steps:       "Bake.",
		Image:       "https://img.test/nachos.jpg",
		Category:    CategorySnack,
	}

	d := DraftFromRecipe(r)
	assert.Equal(t, "chips\ncheese", d.Ingredients)
	assert.Equal(t, r, d.Normalize(r.ID, DefaultImage))

	// Structured lines survive even when they would not survive a re-split
	r.Ingredients = []string{"  2 cups flour  ", "a\nb"}
	assert.Equal(t, r, DraftFromRecipe(r).Normalize(r.ID, DefaultImage))
}

func TestMatches(t *testing.T) {
	r := &Recipe{Name: "Iced Tea", Ingredients: []string{"Black tea", "Ice"}, Category: CategoryBeverage}

	assert.True(t, r.Matches(""))
	assert.True(t, r.Matches("iced"))
	assert.True(t, r.Matches("BLACK"))
	assert.True(t, r.Matches("bev"))
	assert.False(t, r.Matches("coffee"))
}

func TestClone(t *testing.T) {
	r := &Recipe{Name: "Toast", Ingredients: []string{"bread"}}
	c := r.Clone()
	require.NotSame(t, r, c)
	c.Ingredients[0] = "butter"
	assert.Equal(t, "bread", r.Ingredients[0])

	var nilRecipe *Recipe
	assert.Nil(t, nilRecipe.Clone())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryMainCourse, c)

	c, err = ParseCategory(" main course ")
	require.NoError(t, err)
	assert.Equal(t, CategoryMainCourse, c)

	_, err = ParseCategory("Soup")
	assert.Error(t, err)

	assert.True(t, CategoryDessert.Valid())
	assert.False(t, Category("dessert").Valid())
	assert.Equal(t, CategoryDessert, Category("dessert").OrDefault())
	assert.Equal(t, CategoryMainCourse, Category("Soup").OrDefault())
	assert.Len(t, Categories(), 5)
}
