// Package nutrition resolves food names to nutrition facts. The Provider
// interface keeps callers ignorant of where the data comes from; the
// bundled StaticProvider serves a fixed table until a real food database
// (e.g. USDA FoodData Central) is wired in behind the same interface.
package nutrition

import (
	"context"
	"errors"
)

var (
	// ErrInvalidQuery is returned for an empty or missing search term.
	ErrInvalidQuery = errors.New("search query is required")
	// ErrFoodNotFound is returned when an exact-name lookup has no match.
	ErrFoodNotFound = errors.New("food not found")
)

// Food is one entry's nutrition facts. Macro values are grams per serving;
// calories are kcal.
type Food struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"serving_size"`
}

// Provider looks up nutrition facts by food name.
type Provider interface {
	// Search returns all foods whose name contains term,
	// case-insensitively. An empty term fails with ErrInvalidQuery.
	Search(ctx context.Context, term string) ([]Food, error)
	// Lookup returns the food with exactly the given name,
	// case-insensitively, or ErrFoodNotFound.
	Lookup(ctx context.Context, name string) (*Food, error)
}
