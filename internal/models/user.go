package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity levels recognized for TDEE calculation.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goals holds a user's daily targets. Embedded into User so a profile and
// its goals are always read and written together.
type Goals struct {
	DailyCalories int      `gorm:"default:2000" json:"daily_calories"`
	DailyWater    int      `gorm:"default:8" json:"daily_water"`
	DailySteps    int      `gorm:"default:10000" json:"daily_steps"`
	TargetWeight  *float64 `json:"target_weight,omitempty"`
}

type User struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Age           *int           `json:"age,omitempty"`
	Gender        string         `gorm:"size:20" json:"gender,omitempty"`
	HeightCm      *float64       `gorm:"column:height_cm" json:"height,omitempty"`
	WeightKg      *float64       `gorm:"column:weight_kg" json:"weight,omitempty"`
	ActivityLevel string         `gorm:"size:20;default:'moderate'" json:"activity_level"`
	Goals         Goals          `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
