package migration

import (
	artisandomain "github.com/localvocal/localvocal/internal/artisan/domain"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	orderdomain "github.com/localvocal/localvocal/internal/order/domain"
	"github.com/localvocal/localvocal/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module creates the schema and seeds sample data on startup so the
// marketplace is usable out of the box for local and self-hosted setups.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		if err := AutoMigrate(conn); err != nil {
			return err
		}
		return seed.EnsureSampleData(conn)
	}),
)

// AutoMigrate creates or updates the four marketplace tables.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&authdomain.User{},
		&artisandomain.Profile{},
		&catalogdomain.Product{},
		&orderdomain.Order{},
	)
}
