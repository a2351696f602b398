package database

import (
	"testing"

	"bamborapay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")
	require.NoError(t, Migrate(db))

	// round-trip through the migrated schema
	order := &domain.Order{PaymentStatus: domain.PaymentStatusPending}
	require.NoError(t, db.Create(order).Error)

	var got domain.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, domain.PaymentStatusPending, got.PaymentStatus)
}
