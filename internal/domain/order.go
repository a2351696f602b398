package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusVoided   PaymentStatus = "voided"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID                         int64           `json:"id" gorm:"primaryKey"`
	OrderTotal                 decimal.Decimal `json:"order_total" gorm:"type:numeric(18,2);not null"`
	PaymentStatus              PaymentStatus   `json:"payment_status" gorm:"type:varchar(32);not null;default:'pending';index"`
	AuthorizationTransactionID string          `json:"authorization_transaction_id" gorm:"type:varchar(64)"`
	BillingAddressID           *int64          `json:"billing_address_id"`
	PaidAt                     *time.Time      `json:"paid_at"`
	CreatedAt                  time.Time       `json:"created_at" gorm:"autoCreateTime"`

	BillingAddress *Address    `json:"billing_address,omitempty" gorm:"foreignKey:BillingAddressID"`
	Notes          []OrderNote `json:"notes,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// CanMarkAsPaid reports whether the order is still eligible for the paid
// transition. Already paid, voided and refunded orders are not.
func (o *Order) CanMarkAsPaid() bool {
	return o.PaymentStatus == PaymentStatusPending
}

// OrderNote is an append-only diagnostic record attached to an order.
type OrderNote struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	OrderID           int64     `json:"order_id" gorm:"not null;index"`
	Note              string    `json:"note" gorm:"type:text;not null"`
	DisplayToCustomer bool      `json:"display_to_customer" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderNote) TableName() string {
	return "order_notes"
}
