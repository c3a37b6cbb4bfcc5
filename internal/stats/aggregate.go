// Package stats reduces dated meal and workout records into per-day and
// per-period totals, and composes the dashboard summary. All functions are
// pure: the caller fetches the records, stats only folds them.
package stats

import (
	"sort"
	"time"

	"github.com/mtharrison/fitlog/backend/internal/models"
)

// MacroTotals is the element-wise sum of a set of meals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// WorkoutTotals is the element-wise sum of a set of workouts.
type WorkoutTotals struct {
	Duration       int     `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
}

// SumMacros folds meals into macro totals. Empty input yields zeros.
func SumMacros(meals []models.Meal) MacroTotals {
	var t MacroTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}

// SumWorkouts folds workouts into duration and calorie totals.
func SumWorkouts(workouts []models.Workout) WorkoutTotals {
	var t WorkoutTotals
	for _, w := range workouts {
		t.Duration += w.DurationMinutes
		t.CaloriesBurned += w.CaloriesBurned
	}
	return t
}

// MealDay is one day's worth of meal totals.
type MealDay struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Count    int     `json:"meal_count"`
}

// WorkoutDay is one day's worth of workout totals.
type WorkoutDay struct {
	Date           string  `json:"date"`
	Duration       int     `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
	Count          int     `json:"workout_count"`
}

// DayKey truncates a timestamp to its UTC calendar date, formatted
// YYYY-MM-DD. Grouping is UTC-based; records logged near midnight in other
// zones land on the adjacent day.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// GroupMealsByDay partitions meals by UTC calendar date and sums each
// day's macros. Output is in ascending date order.
func GroupMealsByDay(meals []models.Meal) []MealDay {
	byDay := make(map[string]*MealDay)
	for _, m := range meals {
		key := DayKey(m.OccurredAt)
		day, ok := byDay[key]
		if !ok {
			day = &MealDay{Date: key}
			byDay[key] = day
		}
		day.Calories += m.Calories
		day.Protein += m.Protein
		day.Carbs += m.Carbs
		day.Fats += m.Fats
		day.Count++
	}

	days := make([]MealDay, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// GroupWorkoutsByDay partitions workouts by UTC calendar date and sums each
// day's duration and calories burned. Output is in ascending date order.
func GroupWorkoutsByDay(workouts []models.Workout) []WorkoutDay {
	byDay := make(map[string]*WorkoutDay)
	for _, w := range workouts {
		key := DayKey(w.OccurredAt)
		day, ok := byDay[key]
		if !ok {
			day = &WorkoutDay{Date: key}
			byDay[key] = day
		}
		day.Duration += w.DurationMinutes
		day.CaloriesBurned += w.CaloriesBurned
		day.Count++
	}

	days := make([]WorkoutDay, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
