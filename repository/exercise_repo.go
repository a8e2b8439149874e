package repository

import (
	"context"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(ctx context.Context, entry *models.ExerciseEntry) error
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.ExerciseEntry, error)
}

type exerciseRepo struct {
	db *gorm.DB
}

func NewExerciseRepo(db *gorm.DB) ExerciseRepository {
	return &exerciseRepo{db: db}
}

func (r *exerciseRepo) Create(ctx context.Context, entry *models.ExerciseEntry) error {
	// millisecond precision keeps every instant inside some DayWindow
	entry.Date = entry.Date.UTC().Truncate(time.Millisecond)
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *exerciseRepo) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.ExerciseEntry, error) {
	entries := []models.ExerciseEntry{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
