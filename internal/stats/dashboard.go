package stats

import (
	"time"

	"github.com/mtharrison/fitlog/backend/internal/metrics"
	"github.com/mtharrison/fitlog/backend/internal/models"
)

// Dashboard is the aggregated summary view for a single day.
type Dashboard struct {
	User  DashboardUser  `json:"user"`
	Today DashboardToday `json:"today"`
}

type DashboardUser struct {
	Name  string       `json:"name"`
	Goals models.Goals `json:"goals"`
	BMI   *float64     `json:"bmi"`
}

type DashboardToday struct {
	Date        string            `json:"date"`
	WaterIntake int               `json:"water_intake"`
	Steps       int               `json:"steps"`
	Weight      *float64          `json:"weight"`
	Meals       DashboardMeals    `json:"meals"`
	Workouts    DashboardWorkouts `json:"workouts"`
}

type DashboardMeals struct {
	Count int `json:"count"`
	MacroTotals
}

type DashboardWorkouts struct {
	Count int `json:"count"`
	WorkoutTotals
}

// ComposeDashboard builds the dashboard from data the caller has already
// fetched for the given day. A nil log entry means nothing was recorded:
// water and steps read as zero and the weight falls back to the profile.
func ComposeDashboard(user *models.User, day time.Time, log *models.DailyLog, meals []models.Meal, workouts []models.Workout) Dashboard {
	var bmi *float64
	if user.HeightCm != nil && user.WeightKg != nil {
		if v, ok := metrics.BMI(*user.HeightCm, *user.WeightKg); ok {
			bmi = &v
		}
	}

	today := DashboardToday{
		Date:   DayKey(day),
		Weight: user.WeightKg,
		Meals: DashboardMeals{
			Count:       len(meals),
			MacroTotals: SumMacros(meals),
		},
		Workouts: DashboardWorkouts{
			Count:         len(workouts),
			WorkoutTotals: SumWorkouts(workouts),
		},
	}
	if log != nil {
		today.WaterIntake = log.WaterIntake
		today.Steps = log.Steps
		if log.Weight != nil {
			today.Weight = log.Weight
		}
	}

	return Dashboard{
		User: DashboardUser{
			Name:  user.Name,
			Goals: user.Goals,
			BMI:   bmi,
		},
		Today: today,
	}
}
