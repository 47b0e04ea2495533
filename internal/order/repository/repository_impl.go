package repository

import (
	"context"

	"github.com/localvocal/localvocal/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) ListByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.Summary, error) {
	var orders []domain.Summary
	err := db.WithContext(ctx).Raw(
		`SELECT o.id, o.customer_id, o.product_id, o.status, o.created_at,
		        p.name AS product_name, p.price, p.image_url
		 FROM orders o
		 JOIN products p ON o.product_id = p.id
		 WHERE o.customer_id = ?
		 ORDER BY o.created_at DESC, o.id DESC`,
		customerID,
	).Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
