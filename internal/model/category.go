package model

import (
	"fmt"
	"strings"
)

// Category is the fixed set of recipe categories offered by the form
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
	CategorySnack      Category = "Snack"

	DefaultCategory = CategoryMainCourse
)

// Categories lists every category in display order
func Categories() []Category {
	return []Category{
		CategoryAppetizer,
		CategoryMainCourse,
		CategoryDessert,
		CategoryBeverage,
		CategorySnack,
	}
}

// ParseCategory resolves s case-insensitively. An empty string yields the
// default category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCategory, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// OrDefault returns the canonical category for c, or the default one when c
// is empty or unknown.
func (c Category) OrDefault() Category {
	parsed, err := ParseCategory(string(c))
	if err != nil {
		return DefaultCategory
	}
	return parsed
}
