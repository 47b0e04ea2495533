package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]Summary, error)
}
