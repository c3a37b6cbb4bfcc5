package main

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtharrison/fitlog/backend/config"
	"github.com/mtharrison/fitlog/backend/internal/database"
	"github.com/mtharrison/fitlog/backend/internal/logger"
	"github.com/mtharrison/fitlog/backend/internal/models"
)

// Seeds a demo account with a few days of records. Development only.
func main() {
	log := logger.Init()
	defer logger.Sync()

	if config.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var existing models.User
	if err := db.First(&existing, "email = ?", "demo@fitlog.dev").Error; err == nil {
		log.Info("demo user already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	age := 30
	height := 178.0
	weight := 75.0
	user := models.User{
		Name:          "Demo User",
		Email:         "demo@fitlog.dev",
		PasswordHash:  string(hash),
		Age:           &age,
		Gender:        "male",
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: models.ActivityModerate,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("failed to create demo user", zap.Error(err))
	}

	now := time.Now().UTC()
	meals := []models.Meal{
		{UserID: user.ID, Name: "Oatmeal with banana", MealType: models.MealBreakfast, Calories: 350, Protein: 10, Carbs: 60, Fats: 7, OccurredAt: now.Add(-26 * time.Hour)},
		{UserID: user.ID, Name: "Chicken salad", MealType: models.MealLunch, Calories: 520, Protein: 42, Carbs: 20, Fats: 28, OccurredAt: now.Add(-22 * time.Hour)},
		{UserID: user.ID, Name: "Salmon and rice", MealType: models.MealDinner, Calories: 640, Protein: 38, Carbs: 55, Fats: 26, OccurredAt: now.Add(-2 * time.Hour)},
	}
	for i := range meals {
		if err := db.Create(&meals[i]).Error; err != nil {
			log.Fatal("failed to seed meal", zap.Error(err))
		}
	}

	distance := 5.2
	workouts := []models.Workout{
		{UserID: user.ID, Exercise: "Morning run", Type: models.WorkoutCardio, DurationMinutes: 32, CaloriesBurned: 320, Intensity: models.IntensityMedium, DistanceKm: &distance, OccurredAt: now.Add(-24 * time.Hour)},
		{UserID: user.ID, Exercise: "Strength session", Type: models.WorkoutStrength, DurationMinutes: 45, CaloriesBurned: 280, Intensity: models.IntensityHigh, OccurredAt: now.Add(-3 * time.Hour)},
	}
	for i := range workouts {
		if err := db.Create(&workouts[i]).Error; err != nil {
			log.Fatal("failed to seed workout", zap.Error(err))
		}
	}

	sleep := 7.5
	logEntry := models.DailyLog{
		UserID:      user.ID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		WaterIntake: 6,
		Steps:       8421,
		SleepHours:  &sleep,
		Mood:        models.MoodGood,
	}
	if err := db.Create(&logEntry).Error; err != nil {
		log.Fatal("failed to seed daily log", zap.Error(err))
	}

	log.Info("seeded demo account", zap.String("email", user.Email))
}
