package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/localvocal/localvocal/internal/migration"
	"github.com/localvocal/localvocal/internal/order/domain"
	"github.com/localvocal/localvocal/internal/order/repository"
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

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    conn,
		Log:   zaptest.NewLogger(t),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc.(*Service), conn
}

func TestCreateOrder(t *testing.T) {
	svc, conn := newTestService(t)
	const customerID = int64(500)

	order, err := svc.Create(context.Background(), customerID, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.EqualValues(t, 1, order.ProductID)
	assert.False(t, order.CreatedAt.IsZero())

	var count int64
	require.NoError(t, conn.Model(&domain.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, conn := newTestService(t)

	_, err := svc.Create(context.Background(), 500, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	var count int64
	require.NoError(t, conn.Model(&domain.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListByCustomer(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()
	const customerID = int64(500)

	// Insert directly so creation times are distinct and deterministic.
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, productID := range []int64{1, 3} {
		require.NoError(t, conn.Create(&domain.Order{
			ID:         int64(100 + i),
			CustomerID: customerID,
			ProductID:  productID,
			Status:     domain.StatusPending,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}
	require.NoError(t, conn.Create(&domain.Order{
		ID:         200,
		CustomerID: 777,
		ProductID:  4,
		Status:     domain.StatusPending,
		CreatedAt:  base,
	}).Error)

	orders, err := svc.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first, joined with the ordered product.
	assert.EqualValues(t, 3, orders[0].ProductID)
	assert.Equal(t, "Hand-painted Kalamkari Saree", orders[0].ProductName)
	assert.InDelta(t, 4500, orders[0].Price, 0.001)
	assert.EqualValues(t, 1, orders[1].ProductID)

	none, err := svc.ListByCustomer(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
