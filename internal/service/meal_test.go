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

func TestCreateMeal(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	user := testhelpers.CreateTestUser(t, db)

	calories := 520.0
	meal, err := svc.CreateMeal(context.Background(), user.ID, &types.CreateMealRequest{
		Name:       "Chicken salad",
		MealType:   models.MealLunch,
		Calories:   &calories,
		Protein:    42,
		OccurredAt: "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, meal.UserID)
	assert.Equal(t, 520.0, meal.Calories)
	assert.Equal(t, "1 serving", meal.ServingSize)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), meal.OccurredAt.UTC())
}

func TestCreateMealDefaultsOccurredAt(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	user := testhelpers.CreateTestUser(t, db)

	calories := 100.0
	before := time.Now().UTC().Add(-time.Minute)
	meal, err := svc.CreateMeal(context.Background(), user.ID, &types.CreateMealRequest{
		Name:     "Apple",
		MealType: models.MealSnack,
		Calories: &calories,
	})
	require.NoError(t, err)
	assert.True(t, meal.OccurredAt.After(before))
}

func TestListMealsFilterAndTotals(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	user := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testhelpers.CreateTestMeal(t, db, user, "Breakfast", 300, day.Add(8*time.Hour))
	testhelpers.CreateTestMeal(t, db, user, "Lunch", 500, day.Add(13*time.Hour))
	testhelpers.CreateTestMeal(t, db, user, "Yesterday", 999, day.Add(-6*time.Hour))
	testhelpers.CreateTestMeal(t, db, other, "Not mine", 800, day.Add(12*time.Hour))

	list, err := svc.ListMeals(context.Background(), user.ID, service.MealFilter{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 2, list.Count)
	assert.Equal(t, 800.0, list.Totals.Calories)
	// Newest first.
	assert.Equal(t, "Lunch", list.Meals[0].Name)
	assert.Equal(t, "Breakfast", list.Meals[1].Name)
}

func TestListMealsTypeFilter(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	user := testhelpers.CreateTestUser(t, db)

	now := time.Now().UTC()
	breakfast := testhelpers.CreateTestMeal(t, db, user, "Oatmeal", 350, now.Add(-2*time.Hour))
	breakfast.MealType = models.MealBreakfast
	require.NoError(t, db.Save(breakfast).Error)
	testhelpers.CreateTestMeal(t, db, user, "Salad", 400, now.Add(-time.Hour))

	list, err := svc.ListMeals(context.Background(), user.ID, service.MealFilter{MealType: models.MealBreakfast})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "Oatmeal", list.Meals[0].Name)
}

func TestUpdateMealOwnership(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	owner := testhelpers.CreateTestUser(t, db)
	intruder := testhelpers.CreateTestUser(t, db)

	meal := testhelpers.CreateTestMeal(t, db, owner, "Salmon", 640, time.Now().UTC())

	newName := "Grilled salmon"
	_, err := svc.UpdateMeal(context.Background(), intruder.ID, meal.ID, &types.UpdateMealRequest{Name: &newName})
	assert.ErrorIs(t, err, service.ErrNotOwner)

	updated, err := svc.UpdateMeal(context.Background(), owner.ID, meal.ID, &types.UpdateMealRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Grilled salmon", updated.Name)
	assert.Equal(t, 640.0, updated.Calories)
}

func TestDeleteMeal(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealService(db)
	owner := testhelpers.CreateTestUser(t, db)
	intruder := testhelpers.CreateTestUser(t, db)

	meal := testhelpers.CreateTestMeal(t, db, owner, "Toast", 200, time.Now().UTC())

	err := svc.DeleteMeal(context.Background(), intruder.ID, meal.ID)
	assert.ErrorIs(t, err, service.ErrNotOwner)

	require.NoError(t, svc.DeleteMeal(context.Background(), owner.ID, meal.ID))

	list, err := svc.ListMeals(context.Background(), owner.ID, service.MealFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
}

func TestMealWeeklyStats(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := service.NewMealService(db).WithClock(fixedClock(now))
	user := testhelpers.CreateTestUser(t, db)

	testhelpers.CreateTestMeal(t, db, user, "Two days ago", 400, now.AddDate(0, 0, -2))
	testhelpers.CreateTestMeal(t, db, user, "Yesterday A", 300, now.AddDate(0, 0, -1))
	testhelpers.CreateTestMeal(t, db, user, "Yesterday B", 200, now.AddDate(0, 0, -1).Add(6*time.Hour))
	testhelpers.CreateTestMeal(t, db, user, "Ancient", 900, now.AddDate(0, 0, -10))

	days, err := svc.WeeklyStats(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, days, 2)
	// Ascending by date.
	assert.Equal(t, "2025-03-08", days[0].Date)
	assert.Equal(t, 400.0, days[0].Calories)
	assert.Equal(t, "2025-03-09", days[1].Date)
	assert.Equal(t, 500.0, days[1].Calories)
	assert.Equal(t, 2, days[1].Count)
}
