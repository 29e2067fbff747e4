package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shelftrack/shelftrack/internal/config"
	"github.com/shelftrack/shelftrack/internal/logger"
	"github.com/shelftrack/shelftrack/internal/migration"
	"github.com/shelftrack/shelftrack/internal/server"
	"github.com/shelftrack/shelftrack/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// HTTP surface and the domain modules it depends on
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
