package main

import (
	"Wayfarer/config"
	"Wayfarer/pkg/log"
	"Wayfarer/pkg/server"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 只在本地开发时存在
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.L.Warn("load .env failed", zap.Error(err))
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name: "api-server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				EnvVars: []string{"APP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate tables and seed point rules",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					return InitMigrator(cfg).Run(ctx.Context)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
