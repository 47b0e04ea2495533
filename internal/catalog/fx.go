package catalog

import (
	"github.com/localvocal/localvocal/internal/catalog/repository"
	"github.com/localvocal/localvocal/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
