package nutrition

import (
	"context"
	"sort"
	"strings"
)

// servingSize is the serving every static entry is normalized to.
const servingSize = "100g"

// Per-100g nutrition facts for a small fixed vocabulary of common foods.
var staticFoods = map[string]Food{
	"apple":          {Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3, Fiber: 4},
	"banana":         {Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4, Fiber: 3},
	"chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0},
	"rice":           {Calories: 206, Protein: 4.3, Carbs: 45, Fats: 0.4, Fiber: 0.6},
	"egg":            {Calories: 78, Protein: 6.3, Carbs: 0.6, Fats: 5.3, Fiber: 0},
	"milk":           {Calories: 149, Protein: 7.7, Carbs: 11.7, Fats: 7.9, Fiber: 0},
	"bread":          {Calories: 79, Protein: 2.7, Carbs: 15, Fats: 1, Fiber: 0.8},
	"salmon":         {Calories: 206, Protein: 22, Carbs: 0, Fats: 13, Fiber: 0},
	"broccoli":       {Calories: 55, Protein: 3.7, Carbs: 11, Fats: 0.6, Fiber: 2.4},
	"potato":         {Calories: 163, Protein: 4.3, Carbs: 37, Fats: 0.2, Fiber: 2.5},
	"yogurt":         {Calories: 100, Protein: 10, Carbs: 13, Fats: 0.4, Fiber: 0},
	"oats":           {Calories: 389, Protein: 16.9, Carbs: 66, Fats: 6.9, Fiber: 10.6},
	"almonds":        {Calories: 579, Protein: 21, Carbs: 22, Fats: 50, Fiber: 12.5},
	"orange":         {Calories: 62, Protein: 1.2, Carbs: 15, Fats: 0.2, Fiber: 3.1},
	"spinach":        {Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Fiber: 2.2},
}

// StaticProvider serves the built-in table. It is safe for concurrent use;
// the table is never mutated after init.
type StaticProvider struct {
	foods map[string]Food
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider returns a provider backed by the built-in food table.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{foods: staticFoods}
}

// Search returns every food whose name contains term, case-insensitively,
// in alphabetical order.
func (p *StaticProvider) Search(ctx context.Context, term string) ([]Food, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, ErrInvalidQuery
	}

	var results []Food
	for name, f := range p.foods {
		if strings.Contains(name, term) {
			f.Name = name
			f.ServingSize = servingSize
			results = append(results, f)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

// Lookup returns the food with exactly the given name, case-insensitively.
func (p *StaticProvider) Lookup(ctx context.Context, name string) (*Food, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	f, ok := p.foods[key]
	if !ok {
		return nil, ErrFoodNotFound
	}
	f.Name = key
	f.ServingSize = servingSize
	return &f, nil
}
