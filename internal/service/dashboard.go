package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/stats"
)

// DashboardService assembles the day summary. It only fetches; the
// composition itself is pure and lives in the stats package.
type DashboardService struct {
	db       *gorm.DB
	meals    *MealService
	workouts *WorkoutService
	now      func() time.Time
}

func NewDashboardService(db *gorm.DB, meals *MealService, workouts *WorkoutService) *DashboardService {
	return &DashboardService{
		db:       db,
		meals:    meals,
		workouts: workouts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service's notion of "now". Used by tests.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Dashboard fetches today's log entry, meals and workouts for the user and
// composes the summary view. A missing daily log is not an error; the
// composer substitutes zeros.
func (s *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*stats.Dashboard, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	today := s.now()

	var log *models.DailyLog
	var entry models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, stats.StartOfDay(today)).
		First(&entry).Error
	switch {
	case err == nil:
		log = &entry
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	meals, err := s.meals.MealsOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workouts.WorkoutsOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	dashboard := stats.ComposeDashboard(&user, today, log, meals, workouts)
	return &dashboard, nil
}
