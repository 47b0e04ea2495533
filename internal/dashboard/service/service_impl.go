package service

import (
	"context"

	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"github.com/localvocal/localvocal/internal/dashboard/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// monthlySales is a presentation placeholder, not derived from order dates.
// TODO: replace with a real per-month rollup once orders carry enough
// history to chart.
var monthlySales = []domain.MonthlySale{
	{Name: "Jan", Sales: 400},
	{Name: "Feb", Sales: 300},
	{Name: "Mar", Sales: 600},
	{Name: "Apr", Sales: 800},
}

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

func (s *Service) Stats(ctx context.Context, artisanID int64) (*domain.Stats, error) {
	var totalOrders int64
	err := s.db.WithContext(ctx).Raw(
		`SELECT count(*)
		 FROM orders o
		 JOIN products p ON o.product_id = p.id
		 WHERE p.artisan_id = ?`,
		artisanID,
	).Scan(&totalOrders).Error
	if err != nil {
		return nil, err
	}

	var totalEarnings *float64
	err = s.db.WithContext(ctx).Raw(
		`SELECT sum(p.price * ?)
		 FROM orders o
		 JOIN products p ON o.product_id = p.id
		 WHERE p.artisan_id = ?`,
		catalogdomain.ArtisanShareRate,
		artisanID,
	).Scan(&totalEarnings).Error
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		TotalOrders:  totalOrders,
		MonthlySales: monthlySales,
	}
	if totalEarnings != nil {
		stats.TotalEarnings = *totalEarnings
	}

	return stats, nil
}
