package facing

import (
	"github.com/shelftrack/shelftrack/internal/facing/repository"
	"github.com/shelftrack/shelftrack/internal/facing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("facing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
