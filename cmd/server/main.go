package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"roulette_backend/internal/app"

	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "roulette",
		Usage: "multiplayer roulette round server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "path to .env file",
				EnvVars: []string{"ENV_FILE"},
			},
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to YAML config with the roulette section",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.NewApp(c.String("env-file"), c.String("config")).Run(ctx)
		},
	}

	if err := cliApp.RunContext(context.Background(), os.Args); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
