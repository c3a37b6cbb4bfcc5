package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/stats"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// ErrNotOwner is returned when a user touches a record owned by someone
// else.
var ErrNotOwner = errors.New("record belongs to another user")

const defaultListLimit = 50

// MealService handles meal CRUD and aggregation queries.
type MealService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the service's notion of "now". Used by tests.
func (s *MealService) WithClock(now func() time.Time) *MealService {
	s.now = now
	return s
}

// CreateMeal logs a meal for the user.
func (s *MealService) CreateMeal(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error) {
	meal := models.Meal{
		UserID:   userID,
		Name:     req.Name,
		MealType: req.MealType,
		Calories: *req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		Fiber:    req.Fiber,
		Notes:    req.Notes,
	}
	if req.ServingSize != "" {
		meal.ServingSize = req.ServingSize
	}
	if req.OccurredAt != "" {
		occurred, err := ParseDate(req.OccurredAt)
		if err != nil {
			return nil, err
		}
		meal.OccurredAt = occurred
	}

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealFilter narrows ListMeals.
type MealFilter struct {
	// Date restricts results to a single calendar day when non-zero.
	Date time.Time
	// MealType restricts results to one meal type when non-empty.
	MealType string
	// Limit caps the number of records; 0 means the default of 50.
	Limit int
}

// MealList is a page of meals with their aggregate totals.
type MealList struct {
	Count  int               `json:"count"`
	Totals stats.MacroTotals `json:"totals"`
	Meals  []models.Meal     `json:"meals"`
}

// ListMeals returns the user's meals, newest first, with totals over the
// returned set.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, filter MealFilter) (*MealList, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.Date.IsZero() {
		start, end := stats.DayRange(filter.Date)
		query = query.Where("occurred_at BETWEEN ? AND ?", start, end)
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}

	var meals []models.Meal
	if err := query.Order("occurred_at DESC").Limit(limit).Find(&meals).Error; err != nil {
		return nil, err
	}

	return &MealList{
		Count:  len(meals),
		Totals: stats.SumMacros(meals),
		Meals:  meals,
	}, nil
}

// UpdateMeal applies the provided fields after an ownership check.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.UpdateMealRequest) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", mealID).Error; err != nil {
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		meal.Name = *req.Name
	}
	if req.MealType != nil {
		meal.MealType = *req.MealType
	}
	if req.Calories != nil {
		meal.Calories = *req.Calories
	}
	if req.Protein != nil {
		meal.Protein = *req.Protein
	}
	if req.Carbs != nil {
		meal.Carbs = *req.Carbs
	}
	if req.Fats != nil {
		meal.Fats = *req.Fats
	}
	if req.Fiber != nil {
		meal.Fiber = *req.Fiber
	}
	if req.ServingSize != nil {
		meal.ServingSize = *req.ServingSize
	}
	if req.Notes != nil {
		meal.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal after an ownership check.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", mealID).Error; err != nil {
		return err
	}
	if meal.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&meal).Error
}

// WeeklyStats groups the trailing 7 days of meals into per-day totals,
// ascending by date.
func (s *MealService) WeeklyStats(ctx context.Context, userID uuid.UUID) ([]stats.MealDay, error) {
	since := stats.TrailingWindow(s.now(), 7)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return stats.GroupMealsByDay(meals), nil
}

// MealsOn returns all meals for one calendar day, oldest first.
func (s *MealService) MealsOn(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.Meal, error) {
	start, end := stats.DayRange(day)

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at BETWEEN ? AND ?", userID, start, end).
		Order("occurred_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
