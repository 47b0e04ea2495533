package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	List(ctx context.Context, db *gorm.DB) ([]Summary, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Detail, error)
}
