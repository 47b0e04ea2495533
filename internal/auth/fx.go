package auth

import (
	"github.com/localvocal/localvocal/internal/auth/repository"
	"github.com/localvocal/localvocal/internal/auth/service"
	"github.com/localvocal/localvocal/internal/auth/token"
	"github.com/localvocal/localvocal/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(provideIssuer),
)

func provideIssuer(cfg config.Config) (*token.Issuer, error) {
	return token.NewIssuer(cfg.AuthJWTSecret)
}
