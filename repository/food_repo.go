package repository

import (
	"context"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(ctx context.Context, entry *models.FoodEntry) error
	// ListBetween returns the user's entries dated within [from, to], inclusive.
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.FoodEntry, error)
}

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(ctx context.Context, entry *models.FoodEntry) error {
	// millisecond precision keeps every instant inside some DayWindow
	entry.Date = entry.Date.UTC().Truncate(time.Millisecond)
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *foodRepo) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.FoodEntry, error) {
	entries := []models.FoodEntry{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
