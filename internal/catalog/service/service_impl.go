package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/localvocal/localvocal/internal/catalog/domain"
	"github.com/localvocal/localvocal/internal/config"
	"github.com/localvocal/localvocal/internal/traceability"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New listings get a placeholder sustainability score in [80,100) until a
// real scoring model exists.
const (
	scoreFloor = 80
	scoreSpan  = 20
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   config.Config
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		cfg:   p.Cfg,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	return s.repo.List(ctx, s.db)
}

// Get returns the product page payload: the joined detail row, the computed
// price split, and a traceability QR pointing back at the detail page.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Detail, error) {
	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Breakdown = domain.Product{Price: product.Price}.Breakdown()

	qr, err := traceability.DataURL(traceability.ProductPayload(s.cfg.AppURL, product.ID))
	if err != nil {
		return nil, err
	}
	product.QRCode = qr

	return product, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	product := &domain.Product{
		ID:                  s.genID.Generate().Int64(),
		Name:                name,
		Description:         strings.TrimSpace(req.Description),
		Price:               req.Price,
		Category:            strings.TrimSpace(req.Category),
		ArtisanID:           req.ArtisanID,
		ImageURL:            strings.TrimSpace(req.ImageURL),
		RawMaterialSource:   strings.TrimSpace(req.RawMaterialSource),
		TimeToCreate:        strings.TrimSpace(req.TimeToCreate),
		SustainabilityScore: scoreFloor + rand.IntN(scoreSpan),
	}

	if err := s.repo.Insert(ctx, s.db, product); err != nil {
		return nil, err
	}

	s.log.Info("product listed",
		zap.Int64("product_id", product.ID),
		zap.Int64("artisan_id", product.ArtisanID),
	)

	return product, nil
}
