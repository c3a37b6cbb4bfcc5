package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Moods recorded on a daily log.
const (
	MoodExcellent = "excellent"
	MoodGood      = "good"
	MoodOkay      = "okay"
	MoodBad       = "bad"
	MoodTerrible  = "terrible"
)

// DailyLog is the per-user, per-calendar-day record of water, steps, weight,
// sleep and mood. Date is truncated to midnight UTC; the unique index
// enforces at most one entry per user per day.
type DailyLog struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date        time.Time      `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	WaterIntake int            `gorm:"default:0" json:"water_intake"`
	Steps       int            `gorm:"default:0" json:"steps"`
	Weight      *float64       `json:"weight,omitempty"`
	SleepHours  *float64       `json:"sleep,omitempty"`
	Mood        string         `gorm:"size:20" json:"mood,omitempty"`
	Notes       string         `gorm:"size:1000" json:"notes,omitempty"`
}

func (d *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
