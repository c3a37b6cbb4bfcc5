package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types. A meal is always one of these; "snack" is the catch-all.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Meal is a single logged food entry. Macro fields are grams; calories are
// kcal. OccurredAt defaults to the time of logging.
type Meal struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_meals_user_occurred" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	MealType    string         `gorm:"size:20;not null" json:"meal_type"`
	Calories    float64        `gorm:"not null" json:"calories"`
	Protein     float64        `gorm:"default:0" json:"protein"`
	Carbs       float64        `gorm:"default:0" json:"carbs"`
	Fats        float64        `gorm:"default:0" json:"fats"`
	Fiber       float64        `gorm:"default:0" json:"fiber"`
	ServingSize string         `gorm:"size:100;default:'1 serving'" json:"serving_size"`
	OccurredAt  time.Time      `gorm:"not null;index:idx_meals_user_occurred" json:"occurred_at"`
	Notes       string         `gorm:"size:500" json:"notes,omitempty"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}
	return nil
}
