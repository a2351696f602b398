package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BamboraSettings is the merchant configuration for the hosted payment page.
// A single row is kept and reloaded on every request so that admin changes
// take effect without a restart.
type BamboraSettings struct {
	ID                      int64           `json:"id" gorm:"primaryKey"`
	MerchantID              string          `json:"merchant_id" gorm:"type:varchar(64)"`
	HashKey                 string          `json:"-" gorm:"type:varchar(128)"`
	AdditionalFee           decimal.Decimal `json:"additional_fee" gorm:"type:numeric(18,2);not null;default:0"`
	AdditionalFeePercentage bool            `json:"additional_fee_percentage" gorm:"not null;default:false"`
	UpdatedAt               time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (BamboraSettings) TableName() string {
	return "bambora_settings"
}

// Configured reports whether the credentials needed to sign outbound
// requests are present.
func (s *BamboraSettings) Configured() bool {
	return s.MerchantID != "" && s.HashKey != ""
}
