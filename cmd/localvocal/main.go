package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/localvocal/localvocal/internal/config"
	"github.com/localvocal/localvocal/internal/migration"
	"github.com/localvocal/localvocal/internal/observability"
	"github.com/localvocal/localvocal/internal/server"
	"github.com/localvocal/localvocal/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
