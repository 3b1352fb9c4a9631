package service

import (
	"strings"

	"github.com/pageza/recipebook/backend/internal/model"
)

// Field names and messages reported by Validate
const (
	FieldName        = "name"
	FieldIngredients = "ingredients"
	FieldSteps       = "steps"

	MsgNameRequired        = "Recipe name is required"
	MsgIngredientsRequired = "Ingredients are required"
	MsgStepsRequired       = "Preparation steps are required"
)

// Validate checks the required fields of a draft. The result is empty when
// the draft may be committed.
func Validate(d model.DraftRecipe) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	if len(d.IngredientList()) == 0 {
		errs[FieldIngredients] = MsgIngredientsRequired
	}
	if strings.TrimSpace(d.Steps) == "" {
		errs[FieldSteps] = MsgStepsRequired
	}
	return errs
}
