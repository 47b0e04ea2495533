package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/localvocal/localvocal/internal/catalog/domain"
	"github.com/localvocal/localvocal/internal/catalog/repository"
	"github.com/localvocal/localvocal/internal/config"
	"github.com/localvocal/localvocal/internal/migration"
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
		Cfg:   config.Config{AppURL: "https://localvocal.example"},
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc.(*Service), conn
}

func TestListSeedCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	assert.EqualValues(t, 1, products[0].ID)
	assert.Equal(t, "Etikoppaka Wooden Elephant", products[0].Name)
	assert.Equal(t, "Ravi Kumar", products[0].ArtisanName)
	assert.Equal(t, "Lakshmi Devi", products[2].ArtisanName)
}

func TestGetComputesBreakdownAndQR(t *testing.T) {
	svc, _ := newTestService(t)

	product, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.InDelta(t, 840, product.Breakdown.ArtisanShare, 0.001)
	assert.InDelta(t, 120, product.Breakdown.PlatformFee, 0.001)
	assert.InDelta(t, 240, product.Breakdown.Logistics, 0.001)
	assert.InDelta(t, product.Price,
		product.Breakdown.ArtisanShare+product.Breakdown.PlatformFee+product.Breakdown.Logistics, 0.001)

	assert.True(t, strings.HasPrefix(product.QRCode, "data:image/png;base64,"),
		"expected a png data url, got prefix %.40s", product.QRCode)

	assert.Equal(t, "Etikoppaka, Visakhapatnam", product.Location)
	assert.NotEmpty(t, product.ArtisanBio)
}

func TestGetUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "  ", Price: 100, ArtisanID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Clay Pot", Price: 0, ArtisanID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Clay Pot", Price: -10, ArtisanID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreatePersistsProduct(t *testing.T) {
	svc, conn := newTestService(t)

	product, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:      "  Clay Pot  ",
		Price:     300,
		Category:  "Pottery",
		ArtisanID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Clay Pot", product.Name)
	assert.GreaterOrEqual(t, product.SustainabilityScore, 80)
	assert.Less(t, product.SustainabilityScore, 100)

	var stored domain.Product
	require.NoError(t, conn.First(&stored, product.ID).Error)
	assert.Equal(t, product.Name, stored.Name)
	assert.EqualValues(t, 1, stored.ArtisanID)
}
