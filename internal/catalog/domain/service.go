package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	ArtisanID         int64
	Name              string
	Description       string
	Price             float64
	Category          string
	ImageURL          string
	RawMaterialSource string
	TimeToCreate      string
}

type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (*Detail, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
}

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
)
