package config

import "go.uber.org/fx"

// Module wires application config and the category catalog.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewCatalogHolder,
	),
)
