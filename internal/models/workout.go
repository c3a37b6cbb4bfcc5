package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout types.
const (
	WorkoutCardio      = "cardio"
	WorkoutStrength    = "strength"
	WorkoutFlexibility = "flexibility"
	WorkoutSports      = "sports"
	WorkoutOther       = "other"
)

// Workout intensities.
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Workout is a single logged exercise session. Sets/Reps/WeightKg apply to
// strength work, DistanceKm to cardio; all four are optional.
type Workout struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_workouts_user_occurred" json:"user_id"`
	Exercise        string         `gorm:"size:255;not null" json:"exercise"`
	Type            string         `gorm:"size:20;default:'cardio'" json:"type"`
	DurationMinutes int            `gorm:"not null" json:"duration"`
	CaloriesBurned  float64        `gorm:"not null" json:"calories_burned"`
	Intensity       string         `gorm:"size:10;default:'medium'" json:"intensity"`
	Sets            *int           `json:"sets,omitempty"`
	Reps            *int           `json:"reps,omitempty"`
	WeightKg        *float64       `gorm:"column:weight_kg" json:"weight,omitempty"`
	DistanceKm      *float64       `gorm:"column:distance_km" json:"distance,omitempty"`
	OccurredAt      time.Time      `gorm:"not null;index:idx_workouts_user_occurred" json:"occurred_at"`
	Notes           string         `gorm:"size:500" json:"notes,omitempty"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.OccurredAt.IsZero() {
		w.OccurredAt = time.Now().UTC()
	}
	return nil
}
