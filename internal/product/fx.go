package product

import (
	"github.com/shelftrack/shelftrack/internal/product/repository"
	"github.com/shelftrack/shelftrack/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
