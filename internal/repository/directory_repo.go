package repository

import (
	"context"
	"errors"

	"bamborapay/internal/domain"

	"gorm.io/gorm"
)

// DirectoryRepository resolves the country and state/province references of
// a billing address. Misses are not errors: the signer emits an empty
// ordProvince/ordCountry for unresolved entries.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) GetCountryByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *DirectoryRepository) GetStateProvinceByID(ctx context.Context, id int64) (*domain.StateProvince, error) {
	var s domain.StateProvince
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
