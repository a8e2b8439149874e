package config

import (
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 10

// OpenDatabase connects to Postgres, retrying with capped exponential backoff.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	var err error
	for i := 1; i <= connectAttempts; i++ {
		var db *gorm.DB
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					utils.Log.Infof("Database connected (attempt %d)", i)
					return db, nil
				}
			} else {
				err = dbErr
			}
		}

		utils.Log.Errorf("Database attempt %d failed: %v", i, err)

		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.ExerciseEntry{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
