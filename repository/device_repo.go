package repository

import (
	"context"

	"healthtrack/models"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	FindByTokenHash(ctx context.Context, userID, tokenHash string) (*models.UserDevice, error)
	Save(ctx context.Context, device *models.UserDevice) error
	ListEnabled(ctx context.Context, userID string) ([]models.UserDevice, error)
	SetEnabled(ctx context.Context, userID string, enabled bool) (int64, error)
}

type deviceRepo struct {
	db *gorm.DB
}

func NewDeviceRepo(db *gorm.DB) DeviceRepository {
	return &deviceRepo{db: db}
}

func (r *deviceRepo) FindByTokenHash(ctx context.Context, userID, tokenHash string) (*models.UserDevice, error) {
	var dev models.UserDevice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		First(&dev).Error
	if err != nil {
		return nil, translate(err)
	}
	return &dev, nil
}

// Save inserts the device when it has no id yet, otherwise updates it.
func (r *deviceRepo) Save(ctx context.Context, device *models.UserDevice) error {
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *deviceRepo) ListEnabled(ctx context.Context, userID string) ([]models.UserDevice, error) {
	var devices []models.UserDevice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND enabled = ?", userID, true).
		Find(&devices).Error
	return devices, err
}

func (r *deviceRepo) SetEnabled(ctx context.Context, userID string, enabled bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.UserDevice{}).
		Where("user_id = ?", userID).
		Update("enabled", enabled)
	return res.RowsAffected, res.Error
}
