package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseEntry struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID          string    `gorm:"type:uuid;index:idx_exercise_user_date;not null" json:"user"`
	ActivityName    string    `gorm:"not null" json:"activityName"`
	CaloriesBurned  float64   `gorm:"not null" json:"caloriesBurned"`
	DurationMinutes float64   `gorm:"not null" json:"durationMinutes"`
	Date            time.Time `gorm:"index:idx_exercise_user_date;not null" json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (e *ExerciseEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
