package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
)

// DetailResponse bundles an artisan with everything they have listed.
type DetailResponse struct {
	Artisan  Detail                  `json:"artisan"`
	Products []catalogdomain.Product `json:"products"`
}

type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (*DetailResponse, error)
}

var ErrNotFound = errors.New("artisan not found")
