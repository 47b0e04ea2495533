package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, customerID, productID int64) (*Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Summary, error)
}

var ErrProductNotFound = errors.New("ordered product not found")
