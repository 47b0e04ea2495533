package order

import (
	"github.com/localvocal/localvocal/internal/order/repository"
	"github.com/localvocal/localvocal/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
