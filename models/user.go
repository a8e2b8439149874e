package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"_id"`
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	Gender         string     `gorm:"size:16;not null" json:"gender"`
	Age            int        `gorm:"not null" json:"age"`
	Height         float64    `gorm:"not null" json:"height"`
	CurrentWeight  float64    `gorm:"not null" json:"currentWeight"`
	TargetWeight   float64    `gorm:"not null" json:"targetWeight"`
	ActivityLevel  string     `gorm:"size:16;default:sedentary" json:"activityLevel"`
	CalorieGoal    int        `gorm:"default:2000" json:"calorieGoal"`
	Streak         int        `gorm:"default:0" json:"streak"`
	LastLogin      *time.Time `json:"lastLogin"`
	StreakVersion  int64      `gorm:"not null;default:0" json:"-"` // bumped on every streak write
	ProfilePicture string     `json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
