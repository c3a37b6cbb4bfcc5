package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/service"
	"github.com/mtharrison/fitlog/backend/internal/testhelpers"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

func TestCreateWorkout(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewWorkoutService(db)
	user := testhelpers.CreateTestUser(t, db)

	duration := 45
	burned := 280.0
	sets := 5
	workout, err := svc.CreateWorkout(context.Background(), user.ID, &types.CreateWorkoutRequest{
		Exercise:        "Deadlift",
		Type:            models.WorkoutStrength,
		DurationMinutes: &duration,
		CaloriesBurned:  &burned,
		Intensity:       models.IntensityHigh,
		Sets:            &sets,
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, workout.UserID)
	assert.Equal(t, "strength", workout.Type)
	assert.Equal(t, 45, workout.DurationMinutes)
	assert.Equal(t, 5, *workout.Sets)
	assert.False(t, workout.OccurredAt.IsZero())
}

func TestCreateWorkoutDefaults(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewWorkoutService(db)
	user := testhelpers.CreateTestUser(t, db)

	duration := 20
	burned := 150.0
	workout, err := svc.CreateWorkout(context.Background(), user.ID, &types.CreateWorkoutRequest{
		Exercise:        "Jog",
		DurationMinutes: &duration,
		CaloriesBurned:  &burned,
	})
	require.NoError(t, err)

	assert.Equal(t, "cardio", workout.Type)
	assert.Equal(t, "medium", workout.Intensity)
}

func TestListWorkoutsFilterAndTotals(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewWorkoutService(db)
	user := testhelpers.CreateTestUser(t, db)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testhelpers.CreateTestWorkout(t, db, user, "Morning run", 320, day.Add(7*time.Hour))
	testhelpers.CreateTestWorkout(t, db, user, "Evening swim", 400, day.Add(19*time.Hour))
	testhelpers.CreateTestWorkout(t, db, user, "Old ride", 500, day.AddDate(0, 0, -3))

	list, err := svc.ListWorkouts(context.Background(), user.ID, service.WorkoutFilter{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 2, list.Count)
	assert.Equal(t, 720.0, list.Totals.CaloriesBurned)
	assert.Equal(t, 60, list.Totals.Duration)
	assert.Equal(t, "Evening swim", list.Workouts[0].Exercise)
}

func TestUpdateWorkoutOwnership(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewWorkoutService(db)
	owner := testhelpers.CreateTestUser(t, db)
	intruder := testhelpers.CreateTestUser(t, db)

	workout := testhelpers.CreateTestWorkout(t, db, owner, "Row", 250, time.Now().UTC())

	newDuration := 40
	_, err := svc.UpdateWorkout(context.Background(), intruder.ID, workout.ID, &types.UpdateWorkoutRequest{
		DurationMinutes: &newDuration,
	})
	assert.ErrorIs(t, err, service.ErrNotOwner)

	updated, err := svc.UpdateWorkout(context.Background(), owner.ID, workout.ID, &types.UpdateWorkoutRequest{
		DurationMinutes: &newDuration,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.DurationMinutes)
	assert.Equal(t, "Row", updated.Exercise)
}

func TestDeleteWorkout(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewWorkoutService(db)
	owner := testhelpers.CreateTestUser(t, db)

	workout := testhelpers.CreateTestWorkout(t, db, owner, "Yoga", 120, time.Now().UTC())
	require.NoError(t, svc.DeleteWorkout(context.Background(), owner.ID, workout.ID))

	list, err := svc.ListWorkouts(context.Background(), owner.ID, service.WorkoutFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
}

func TestWorkoutWeeklyStats(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := service.NewWorkoutService(db).WithClock(fixedClock(now))
	user := testhelpers.CreateTestUser(t, db)

	testhelpers.CreateTestWorkout(t, db, user, "Run A", 300, now.AddDate(0, 0, -1))
	testhelpers.CreateTestWorkout(t, db, user, "Run B", 200, now.AddDate(0, 0, -1).Add(4*time.Hour))
	testhelpers.CreateTestWorkout(t, db, user, "Outside window", 700, now.AddDate(0, 0, -9))

	days, err := svc.WeeklyStats(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, days, 1)
	assert.Equal(t, "2025-03-09", days[0].Date)
	assert.Equal(t, 500.0, days[0].CaloriesBurned)
	assert.Equal(t, 60, days[0].Duration)
	assert.Equal(t, 2, days[0].Count)
}
