package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtharrison/fitlog/backend/internal/metrics"
	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/service"
	"github.com/mtharrison/fitlog/backend/internal/testhelpers"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db)

	newWeight := 68.5
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		WeightKg: &newWeight,
	})
	require.NoError(t, err)

	assert.Equal(t, 68.5, *updated.WeightKg)
	// Untouched fields survive.
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, *user.HeightCm, *updated.HeightCm)
}

func TestUpdateGoalsPartial(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db)

	calories := 2400
	target := 72.0
	goals, err := svc.UpdateGoals(context.Background(), user.ID, &types.UpdateGoalsRequest{
		DailyCalories: &calories,
		TargetWeight:  &target,
	})
	require.NoError(t, err)

	assert.Equal(t, 2400, goals.DailyCalories)
	assert.Equal(t, 72.0, *goals.TargetWeight)
	// Defaults untouched by a partial update.
	assert.Equal(t, 8, goals.DailyWater)
	assert.Equal(t, 10000, goals.DailySteps)
}

func TestGetOrCreateDailyLog(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db)

	day := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)

	first, err := svc.GetOrCreateDailyLog(context.Background(), user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), first.Date.UTC())
	assert.Equal(t, 0, first.WaterIntake)

	// A second access on the same day returns the same row.
	second, err := svc.GetOrCreateDailyLog(context.Background(), user.ID, day.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.DailyLog{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateDailyLog(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := service.NewUserService(db).WithClock(fixedClock(now))
	user := testhelpers.CreateTestUser(t, db)

	water := 5
	mood := models.MoodGood
	log, err := svc.UpdateDailyLog(context.Background(), user.ID, &types.UpdateDailyLogRequest{
		WaterIntake: &water,
		Mood:        &mood,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, log.WaterIntake)
	assert.Equal(t, "good", log.Mood)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), log.Date.UTC())

	// A later update for the same day lands on the same row and keeps
	// earlier fields.
	steps := 9000
	log2, err := svc.UpdateDailyLog(context.Background(), user.ID, &types.UpdateDailyLogRequest{
		Steps: &steps,
	})
	require.NoError(t, err)
	assert.Equal(t, log.ID, log2.ID)
	assert.Equal(t, 5, log2.WaterIntake)
	assert.Equal(t, 9000, log2.Steps)
}

func TestUpdateDailyLogExplicitDate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	user := testhelpers.CreateTestUser(t, db)

	water := 3
	log, err := svc.UpdateDailyLog(context.Background(), user.ID, &types.UpdateDailyLogRequest{
		Date:        "2025-01-15",
		WaterIntake: &water,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), log.Date.UTC())

	_, err = svc.UpdateDailyLog(context.Background(), user.ID, &types.UpdateDailyLogRequest{
		Date: "not-a-date",
	})
	assert.Error(t, err)
}

func TestEnergyCalculations(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	// Fixture profile: 70kg, 175cm, age 25, male, moderate activity.
	user := testhelpers.CreateTestUser(t, db)

	calcs, err := svc.EnergyCalculations(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 1674, calcs.BMR)
	assert.Equal(t, 2594, calcs.TDEE)
	assert.Equal(t, "moderate", calcs.ActivityLevel)
	assert.Equal(t, calcs.TDEE, calcs.Recommendations.Maintain)
	assert.Equal(t, calcs.TDEE-250, calcs.Recommendations.MildLoss)
	assert.Equal(t, calcs.TDEE-500, calcs.Recommendations.Loss)
}

func TestEnergyCalculationsIncompleteProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	user := &models.User{
		Name:         "No Biometrics",
		Email:        "bare@example.com",
		PasswordHash: testhelpers.HashPassword(t, "password123"),
	}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.EnergyCalculations(context.Background(), user.ID)
	assert.ErrorIs(t, err, metrics.ErrIncompleteProfile)
}
