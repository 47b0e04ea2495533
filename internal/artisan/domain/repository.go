package domain

import (
	"context"

	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Summary, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Detail, error)
	ListProducts(ctx context.Context, db *gorm.DB, artisanID int64) ([]catalogdomain.Product, error)
}
