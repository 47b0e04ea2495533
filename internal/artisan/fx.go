package artisan

import (
	"github.com/localvocal/localvocal/internal/artisan/repository"
	"github.com/localvocal/localvocal/internal/artisan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("artisan.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
