package service

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"github.com/localvocal/localvocal/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("order.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Create records purchase intent for the product. There is no stock check,
// idempotency key, or payment step; the only precondition is that the
// product exists.
func (s *Service) Create(ctx context.Context, customerID, productID int64) (*domain.Order, error) {
	var product catalogdomain.Product
	err := s.db.WithContext(ctx).
		Select("id").
		Where("id = ?", productID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	order := &domain.Order{
		ID:         s.genID.Generate().Int64(),
		CustomerID: customerID,
		ProductID:  productID,
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, order); err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", customerID),
		zap.Int64("product_id", productID),
	)

	return order, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Summary, error) {
	return s.repo.ListByCustomer(ctx, s.db, customerID)
}
