package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntry is one logged meal item. Entries are never edited after creation.
type FoodEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID    string    `gorm:"type:uuid;index:idx_food_user_date;not null" json:"user"`
	Name      string    `gorm:"not null" json:"name"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Protein   float64   `gorm:"default:0" json:"protein"`
	Carbs     float64   `gorm:"default:0" json:"carbs"`
	Fat       float64   `gorm:"default:0" json:"fat"`
	Date      time.Time `gorm:"index:idx_food_user_date;not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
