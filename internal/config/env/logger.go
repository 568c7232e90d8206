package env

import (
	"fmt"
	"os"

	"roulette_backend/internal/config"
	"roulette_backend/internal/lib/logger/sl"
)

const (
	envEnvName = "ENV"
)

type loggerConfig struct {
	env string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	env := os.Getenv(envEnvName)
	switch env {
	case "":
		env = sl.EnvLocal
	case sl.EnvLocal, sl.EnvDev, sl.EnvProd:
	default:
		return nil, fmt.Errorf("unknown env %q", env)
	}

	return &loggerConfig{
		env: env,
	}, nil
}

func (cfg *loggerConfig) Env() string {
	return cfg.env
}
