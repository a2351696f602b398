package repository

import (
	"context"
	"errors"

	"bamborapay/internal/domain"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the single settings row, creating an empty one on first use
// so that the configure endpoint always has something to update.
func (r *SettingsRepository) Load(ctx context.Context) (*domain.BamboraSettings, error) {
	var s domain.BamboraSettings
	err := r.db.WithContext(ctx).Order("id").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.BamboraSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
