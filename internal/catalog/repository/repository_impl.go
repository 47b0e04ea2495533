package repository

import (
	"context"

	"github.com/localvocal/localvocal/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Summary, error) {
	var products []domain.Summary
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, p.description, p.price, p.category, p.artisan_id,
		        p.image_url AS image, p.raw_material_source, p.time_to_create,
		        p.sustainability_score, u.name AS artisan_name
		 FROM products p
		 JOIN users u ON p.artisan_id = u.id
		 ORDER BY p.id`,
	).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Detail, error) {
	var product domain.Detail
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, p.description, p.price, p.category, p.artisan_id,
		        p.image_url AS image, p.raw_material_source, p.time_to_create,
		        p.sustainability_score, u.name AS artisan_name,
		        ap.location, ap.video_url, ap.bio AS artisan_bio
		 FROM products p
		 JOIN users u ON p.artisan_id = u.id
		 JOIN artisan_profiles ap ON u.id = ap.user_id
		 WHERE p.id = ?`,
		id,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}
