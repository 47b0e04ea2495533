package service

import (
	"context"
	"testing"

	"github.com/localvocal/localvocal/internal/artisan/domain"
	"github.com/localvocal/localvocal/internal/artisan/repository"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
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

	svc := New(Params{
		DB:   conn,
		Log:  zaptest.NewLogger(t),
		Repo: repository.Provide(),
	})
	return svc.(*Service), conn
}

func TestListSeedArtisans(t *testing.T) {
	svc, _ := newTestService(t)

	artisans, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, artisans, 3)

	names := make([]string, 0, len(artisans))
	for _, a := range artisans {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"Ravi Kumar", "Lakshmi Devi", "Srinivas Rao"}, names)
}

func TestListExcludesCustomers(t *testing.T) {
	svc, conn := newTestService(t)

	require.NoError(t, conn.Create(&authdomain.User{
		ID:           500,
		Name:         "Just A Customer",
		Email:        "customer@example.com",
		PasswordHash: "x",
		Role:         authdomain.RoleCustomer,
	}).Error)

	artisans, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, artisans, 3)
}

func TestGetArtisanWithProducts(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", resp.Artisan.Name)
	assert.Equal(t, "Etikoppaka, Visakhapatnam", resp.Artisan.Location)
	assert.NotEmpty(t, resp.Artisan.Bio)

	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Etikoppaka Wooden Elephant", resp.Products[0].Name)
	assert.Equal(t, "Traditional Lattu (Spinning Top)", resp.Products[1].Name)
}

func TestGetUnknownArtisan(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
