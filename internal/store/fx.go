package store

import (
	"github.com/shelftrack/shelftrack/internal/store/repository"
	"github.com/shelftrack/shelftrack/internal/store/service"
	"go.uber.org/fx"
)

var Module = fx.Module("store.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
