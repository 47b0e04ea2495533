package service

import (
	"context"
	"testing"
	"time"

	"github.com/localvocal/localvocal/internal/migration"
	orderdomain "github.com/localvocal/localvocal/internal/order/domain"
	"github.com/localvocal/localvocal/internal/seed"
	pkgdb "github.com/localvocal/localvocal/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	conn, err := pkgdb.NewTest()
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(conn))
	require.NoError(t, seed.EnsureSampleData(conn))

	svc := New(Params{
		DB:  conn,
		Log: zaptest.NewLogger(t),
	})
	return svc.(*Service), conn
}

func placeOrder(t *testing.T, conn *gorm.DB, id, productID int64) {
	t.Helper()
	require.NoError(t, conn.Create(&orderdomain.Order{
		ID:         id,
		CustomerID: 500,
		ProductID:  productID,
		Status:     orderdomain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}).Error)
}

func TestStatsWithoutOrders(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalEarnings)
	require.Len(t, stats.MonthlySales, 4)
	assert.Equal(t, "Jan", stats.MonthlySales[0].Name)
}

func TestStatsEarningsAreArtisanShare(t *testing.T) {
	svc, conn := newTestService(t)

	// Two orders for artisan 1: the elephant (1200) and the lattu (450).
	placeOrder(t, conn, 101, 1)
	placeOrder(t, conn, 102, 2)
	// One order for artisan 2, which must not leak into artisan 1's stats.
	placeOrder(t, conn, 103, 3)

	stats, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.InDelta(t, (1200+450)*0.7, stats.TotalEarnings, 0.001)

	other, err := svc.Stats(context.Background(), 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, other.TotalOrders)
	assert.InDelta(t, 4500*0.7, other.TotalEarnings, 0.001)
}

func TestStatsCountsRepeatOrders(t *testing.T) {
	svc, conn := newTestService(t)

	placeOrder(t, conn, 101, 4)
	placeOrder(t, conn, 102, 4)

	stats, err := svc.Stats(context.Background(), 3)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.InDelta(t, 2*1500*0.7, stats.TotalEarnings, 0.001)
}
