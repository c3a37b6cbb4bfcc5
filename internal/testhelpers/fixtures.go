package testhelpers

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/models"
)

var userCounter int64

// CreateTestUser inserts a user with a complete biometric profile and
// returns it. Email is unique per call.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	age := 25
	height := 175.0
	weight := 70.0
	user := &models.User{
		Name:          "Test User",
		Email:         fmt.Sprintf("test-%d@example.com", atomic.AddInt64(&userCounter, 1)),
		PasswordHash:  HashPassword(t, "password123"),
		Age:           &age,
		Gender:        "male",
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: models.ActivityModerate,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// HashPassword bcrypt-hashes a password with a low cost for test speed.
func HashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

// CreateTestMeal inserts a meal at the given time for the user.
func CreateTestMeal(t *testing.T, db *gorm.DB, user *models.User, name string, calories float64, occurredAt time.Time) *models.Meal {
	t.Helper()

	meal := &models.Meal{
		UserID:     user.ID,
		Name:       name,
		MealType:   models.MealLunch,
		Calories:   calories,
		OccurredAt: occurredAt,
	}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create test meal: %v", err)
	}
	return meal
}

// CreateTestWorkout inserts a workout at the given time for the user.
func CreateTestWorkout(t *testing.T, db *gorm.DB, user *models.User, exercise string, burned float64, occurredAt time.Time) *models.Workout {
	t.Helper()

	workout := &models.Workout{
		UserID:          user.ID,
		Exercise:        exercise,
		Type:            models.WorkoutCardio,
		DurationMinutes: 30,
		CaloriesBurned:  burned,
		OccurredAt:      occurredAt,
	}
	if err := db.Create(workout).Error; err != nil {
		t.Fatalf("failed to create test workout: %v", err)
	}
	return workout
}
