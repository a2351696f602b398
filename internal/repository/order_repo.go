package repository

import (
	"context"
	"time"

	"bamborapay/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkPaidIdempotent records the gateway transaction id and moves the order
// to paid in a single guarded update. The status guard lives in the WHERE
// clause, so a duplicate notification finds zero eligible rows and reports
// changed=false without touching the order.
func (r *OrderRepository) MarkPaidIdempotent(ctx context.Context, orderID int64, authTransactionID string, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND payment_status = ?", orderID, domain.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_status":               domain.PaymentStatusPaid,
			"authorization_transaction_id": authTransactionID,
			"paid_at":                      paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
