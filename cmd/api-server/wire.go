//go:build wireinject
// +build wireinject

package main

import (
	"Wayfarer/config"
	"Wayfarer/dao"
	"Wayfarer/dao/cache"
	"Wayfarer/handler"
	"Wayfarer/pkg/client"
	"Wayfarer/pkg/database"
	"Wayfarer/pkg/log"
	"Wayfarer/pkg/server"
	"Wayfarer/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		log.NewLogger,
		database.NewDB,
		client.NewRedisClient,
		config.ProvideRewardsConfig,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Progress), "*"),
		wire.Struct(new(handler.Point), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitMigrator(cfg *config.Config) *Migrator {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		dao.NewPointRule,
		wire.Struct(new(Migrator), "*"),
	)
	return nil
}
