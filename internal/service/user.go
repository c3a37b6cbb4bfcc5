package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mtharrison/fitlog/backend/internal/metrics"
	"github.com/mtharrison/fitlog/backend/internal/models"
	"github.com/mtharrison/fitlog/backend/internal/stats"
	"github.com/mtharrison/fitlog/backend/internal/types"
)

// UserService handles profile, goal and daily-log operations.
type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the service's notion of "now". Used by tests.
func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

// Today returns the current UTC day per the service clock.
func (s *UserService) Today() time.Time {
	return s.now()
}

// GetUser fetches a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the provided biometric fields and returns the
// updated user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = *req.ActivityLevel
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateGoals applies a partial goal update and returns the new goal set.
func (s *UserService) UpdateGoals(ctx context.Context, userID uuid.UUID, req *types.UpdateGoalsRequest) (*models.Goals, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DailyCalories != nil {
		user.Goals.DailyCalories = *req.DailyCalories
	}
	if req.DailyWater != nil {
		user.Goals.DailyWater = *req.DailyWater
	}
	if req.DailySteps != nil {
		user.Goals.DailySteps = *req.DailySteps
	}
	if req.TargetWeight != nil {
		user.Goals.TargetWeight = req.TargetWeight
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return &user.Goals, nil
}

// GetOrCreateDailyLog returns the log entry for the given day, creating an
// empty one on first access. The unique (user, date) index serializes
// concurrent first reads: the loser of the insert race re-fetches.
func (s *UserService) GetOrCreateDailyLog(ctx context.Context, userID uuid.UUID, day time.Time) (*models.DailyLog, error) {
	date := stats.StartOfDay(day)

	var log models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log = models.DailyLog{UserID: userID, Date: date}
	if createErr := s.db.WithContext(ctx).Create(&log).Error; createErr != nil {
		// Lost the race to another request; the row exists now.
		if fetchErr := s.db.WithContext(ctx).
			Where("user_id = ? AND date = ?", userID, date).
			First(&log).Error; fetchErr != nil {
			return nil, createErr
		}
	}
	return &log, nil
}

// UpdateDailyLog upserts the log entry for the request's date, applying
// only the provided fields.
func (s *UserService) UpdateDailyLog(ctx context.Context, userID uuid.UUID, req *types.UpdateDailyLogRequest) (*models.DailyLog, error) {
	day := s.now()
	if req.Date != "" {
		parsed, err := ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	log, err := s.GetOrCreateDailyLog(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	if req.WaterIntake != nil {
		log.WaterIntake = *req.WaterIntake
	}
	if req.Steps != nil {
		log.Steps = *req.Steps
	}
	if req.Weight != nil {
		log.Weight = req.Weight
	}
	if req.SleepHours != nil {
		log.SleepHours = req.SleepHours
	}
	if req.Mood != nil {
		log.Mood = *req.Mood
	}
	if req.Notes != nil {
		log.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// Calculations is the BMR/TDEE summary for a user.
type Calculations struct {
	BMR             int                     `json:"bmr"`
	TDEE            int                     `json:"tdee"`
	ActivityLevel   string                  `json:"activity_level"`
	Recommendations metrics.Recommendations `json:"recommendations"`
}

// EnergyCalculations derives BMR, TDEE and calorie recommendations from
// the user's profile. Returns metrics.ErrIncompleteProfile when biometrics
// are missing.
func (s *UserService) EnergyCalculations(ctx context.Context, userID uuid.UUID) (*Calculations, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.WeightKg == nil || user.HeightCm == nil || user.Age == nil {
		return nil, metrics.ErrIncompleteProfile
	}

	bmr, err := metrics.BMR(*user.WeightKg, *user.HeightCm, *user.Age, user.Gender)
	if err != nil {
		return nil, err
	}
	tdee := metrics.TDEE(bmr, user.ActivityLevel)

	return &Calculations{
		BMR:             int(math.Round(bmr)),
		TDEE:            int(math.Round(tdee)),
		ActivityLevel:   user.ActivityLevel,
		Recommendations: metrics.Recommend(tdee),
	}, nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
