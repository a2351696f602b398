package bambora

import (
	"context"
	"time"

	"bamborapay/internal/domain"
)

type orderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type orderPaymentWriter interface {
	MarkPaidIdempotent(ctx context.Context, orderID int64, authTransactionID string, paidAt time.Time) (bool, error)
}

type noteAppender interface {
	Append(ctx context.Context, note *domain.OrderNote) error
}

// addressReader returns (nil, nil) on a missing address.
type addressReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
}

// directoryReader returns (nil, nil) on misses; unresolved entries become
// empty ordProvince/ordCountry fields.
type directoryReader interface {
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	GetStateProvinceByID(ctx context.Context, id int64) (*domain.StateProvince, error)
}

type settingsReader interface {
	Load(ctx context.Context) (*domain.BamboraSettings, error)
}
