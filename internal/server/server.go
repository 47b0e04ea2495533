package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/localvocal/localvocal/internal/artisan"
	artisandomain "github.com/localvocal/localvocal/internal/artisan/domain"
	"github.com/localvocal/localvocal/internal/auth"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
	"github.com/localvocal/localvocal/internal/auth/token"
	"github.com/localvocal/localvocal/internal/catalog"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"github.com/localvocal/localvocal/internal/config"
	"github.com/localvocal/localvocal/internal/dashboard"
	dashboarddomain "github.com/localvocal/localvocal/internal/dashboard/domain"
	"github.com/localvocal/localvocal/internal/observability"
	obslogger "github.com/localvocal/localvocal/internal/observability/logger"
	obsmetrics "github.com/localvocal/localvocal/internal/observability/metrics"
	"github.com/localvocal/localvocal/internal/order"
	orderdomain "github.com/localvocal/localvocal/internal/order/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	auth.Module,
	artisan.Module,
	catalog.Module,
	order.Module,
	dashboard.Module,
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger, _ *Server) {
	srv := &http.Server{
		Addr:    net.JoinHostPort("", cfg.HTTPPort),
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	issuer       *token.Issuer
	authSvc      authdomain.Service
	artisanSvc   artisandomain.Service
	catalogSvc   catalogdomain.Service
	orderSvc     orderdomain.Service
	dashboardSvc dashboarddomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Issuer       *token.Issuer
	AuthSvc      authdomain.Service
	ArtisanSvc   artisandomain.Service
	CatalogSvc   catalogdomain.Service
	OrderSvc     orderdomain.Service
	DashboardSvc dashboarddomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		issuer:       p.Issuer,
		authSvc:      p.AuthSvc,
		artisanSvc:   p.ArtisanSvc,
		catalogSvc:   p.CatalogSvc,
		orderSvc:     p.OrderSvc,
		dashboardSvc: p.DashboardSvc,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Auth --------
	api.POST("/auth/signup", s.Signup)
	api.POST("/auth/login", s.Login)

	// -------- Catalog --------
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.POST("/products", s.AuthRequired(), s.RequireArtisan(), s.CreateProduct)

	// -------- Artisans --------
	api.GET("/artisans", s.ListArtisans)
	api.GET("/artisans/:id", s.GetArtisanByID)

	// -------- Orders --------
	api.POST("/orders", s.AuthRequired(), s.CreateOrder)
	api.GET("/orders", s.AuthRequired(), s.ListOrders)

	// -------- Artisan dashboard --------
	api.GET("/artisan/stats", s.AuthRequired(), s.RequireArtisan(), s.GetArtisanStats)

	// -------- Scanner --------
	api.GET("/scan/resolve", s.ResolveScan)
}
