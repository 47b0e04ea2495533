package service

import (
	"context"

	"github.com/localvocal/localvocal/internal/artisan/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("artisan.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.DetailResponse, error) {
	artisan, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if artisan == nil {
		return nil, domain.ErrNotFound
	}

	products, err := s.repo.ListProducts(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	return &domain.DetailResponse{
		Artisan:  *artisan,
		Products: products,
	}, nil
}
