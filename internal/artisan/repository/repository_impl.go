package repository

import (
	"context"

	"github.com/localvocal/localvocal/internal/artisan/domain"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Summary, error) {
	var artisans []domain.Summary
	err := db.WithContext(ctx).Raw(
		`SELECT u.id, u.name, ap.location, ap.photo_url AS image, ap.video_url,
		        ap.category, ap.sustainability_score, ap.short_description
		 FROM users u
		 JOIN artisan_profiles ap ON u.id = ap.user_id
		 WHERE u.role = ?`,
		authdomain.RoleArtisan,
	).Scan(&artisans).Error
	if err != nil {
		return nil, err
	}
	return artisans, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Detail, error) {
	var artisan domain.Detail
	err := db.WithContext(ctx).Raw(
		`SELECT u.id, u.name, ap.bio, ap.short_description, ap.location, ap.category,
		        ap.sustainability_score, ap.photo_url AS image, ap.video_url
		 FROM users u
		 JOIN artisan_profiles ap ON u.id = ap.user_id
		 WHERE u.id = ? AND u.role = ?`,
		id,
		authdomain.RoleArtisan,
	).Scan(&artisan).Error
	if err != nil {
		return nil, err
	}
	if artisan.ID == 0 {
		return nil, nil
	}
	return &artisan, nil
}

func (r *repo) ListProducts(ctx context.Context, db *gorm.DB, artisanID int64) ([]catalogdomain.Product, error) {
	var products []catalogdomain.Product
	err := db.WithContext(ctx).
		Model(&catalogdomain.Product{}).
		Where("artisan_id = ?", artisanID).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
