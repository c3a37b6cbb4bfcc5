package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/stats"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// WorkoutService handles workout CRUD and aggregation queries.
type WorkoutService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the service's notion of "now". Used by tests.
func (s *WorkoutService) WithClock(now func() time.Time) *WorkoutService {
	s.now = now
	return s
}

// CreateWorkout logs a workout for the user.
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID uuid.UUID, req *types.CreateWorkoutRequest) (*models.Workout, error) {
	workout := models.Workout{
		UserID:          userID,
		Exercise:        req.Exercise,
		DurationMinutes: *req.DurationMinutes,
		CaloriesBurned:  *req.CaloriesBurned,
		Sets:            req.Sets,
		Reps:            req.Reps,
		WeightKg:        req.WeightKg,
		DistanceKm:      req.DistanceKm,
		Notes:           req.Notes,
	}
	if req.Type != "" {
		workout.Type = req.Type
	}
	if req.Intensity != "" {
		workout.Intensity = req.Intensity
	}
	if req.OccurredAt != "" {
		occurred, err := ParseDate(req.OccurredAt)
		if err != nil {
			return nil, err
		}
		workout.OccurredAt = occurred
	}

	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// WorkoutFilter narrows ListWorkouts.
type WorkoutFilter struct {
	Date  time.Time
	Type  string
	Limit int
}

// WorkoutList is a page of workouts with their aggregate totals.
type WorkoutList struct {
	Count    int                 `json:"count"`
	Totals   stats.WorkoutTotals `json:"totals"`
	Workouts []models.Workout    `json:"workouts"`
}

// ListWorkouts returns the user's workouts, newest first, with totals over
// the returned set.
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, filter WorkoutFilter) (*WorkoutList, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.Date.IsZero() {
		start, end := stats.DayRange(filter.Date)
		query = query.Where("occurred_at BETWEEN ? AND ?", start, end)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var workouts []models.Workout
	if err := query.Order("occurred_at DESC").Limit(limit).Find(&workouts).Error; err != nil {
		return nil, err
	}

	return &WorkoutList{
		Count:    len(workouts),
		Totals:   stats.SumWorkouts(workouts),
		Workouts: workouts,
	}, nil
}

// UpdateWorkout applies the provided fields after an ownership check.
func (s *WorkoutService) UpdateWorkout(ctx context.Context, userID, workoutID uuid.UUID, req *types.UpdateWorkoutRequest) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.WithContext(ctx).First(&workout, "id = ?", workoutID).Error; err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Exercise != nil {
		workout.Exercise = *req.Exercise
	}
	if req.Type != nil {
		workout.Type = *req.Type
	}
	if req.DurationMinutes != nil {
		workout.DurationMinutes = *req.DurationMinutes
	}
	if req.CaloriesBurned != nil {
		workout.CaloriesBurned = *req.CaloriesBurned
	}
	if req.Intensity != nil {
		workout.Intensity = *req.Intensity
	}
	if req.Sets != nil {
		workout.Sets = req.Sets
	}
	if req.Reps != nil {
		workout.Reps = req.Reps
	}
	if req.WeightKg != nil {
		workout.WeightKg = req.WeightKg
	}
	if req.DistanceKm != nil {
		workout.DistanceKm = req.DistanceKm
	}
	if req.Notes != nil {
		workout.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// DeleteWorkout removes a workout after an ownership check.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID uuid.UUID) error {
	var workout models.Workout
	if err := s.db.WithContext(ctx).First(&workout, "id = ?", workoutID).Error; err != nil {
		return err
	}
	if workout.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&workout).Error
}

// WeeklyStats groups the trailing 7 days of workouts into per-day totals,
// ascending by date.
func (s *WorkoutService) WeeklyStats(ctx context.Context, userID uuid.UUID) ([]stats.WorkoutDay, error) {
	since := stats.TrailingWindow(s.now(), 7)

	var workouts []models.Workout
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return stats.GroupWorkoutsByDay(workouts), nil
}

// WorkoutsOn returns all workouts for one calendar day, oldest first.
func (s *WorkoutService) WorkoutsOn(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.Workout, error) {
	start, end := stats.DayRange(day)

	var workouts []models.Workout
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at BETWEEN ? AND ?", userID, start, end).
		Order("occurred_at ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}
