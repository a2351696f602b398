package repository

import (
	"context"

	"bamborapay/internal/domain"

	"gorm.io/gorm"
)

type OrderNoteRepository struct {
	db *gorm.DB
}

func NewOrderNoteRepository(db *gorm.DB) *OrderNoteRepository {
	return &OrderNoteRepository{db: db}
}

func (r *OrderNoteRepository) Append(ctx context.Context, note *domain.OrderNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *OrderNoteRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderNote, error) {
	var notes []domain.OrderNote
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
