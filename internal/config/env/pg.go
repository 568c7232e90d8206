package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"roulette_backend/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgDSNEnvName            = "PG_DSN"
	pgMaxConnsEnvName       = "PG_MAX_CONNS"
	pgConnectTimeoutEnvName = "PG_CONNECT_TIMEOUT"

	defaultPGConnectTimeout = 5 * time.Second
)

type pgConfig struct {
	dsn            string
	maxConns       int32
	connectTimeout time.Duration
}

// NewPGConfig - настройки пула леджера. PG_DSN обязателен,
// PG_MAX_CONNS = 0 оставляет размер пула по умолчанию pgx
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}
	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("invalid pg dsn: %w", err)
	}

	cfg := &pgConfig{
		dsn:            dsn,
		connectTimeout: defaultPGConnectTimeout,
	}

	if v := os.Getenv(pgMaxConnsEnvName); len(v) != 0 {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return nil, errors.New("invalid pg max conns: " + v)
		}
		cfg.maxConns = int32(n)
	}

	if v := os.Getenv(pgConnectTimeoutEnvName); len(v) != 0 {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, errors.New("invalid pg connect timeout: " + v)
		}
		cfg.connectTimeout = d
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}

func (cfg *pgConfig) ConnectTimeout() time.Duration {
	return cfg.connectTimeout
}

// PoolConfig - конфиг pgxpool с примененными лимитами
func (cfg *pgConfig) PoolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.dsn)
	if err != nil {
		return nil, err
	}
	if cfg.maxConns > 0 {
		poolCfg.MaxConns = cfg.maxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.connectTimeout

	return poolCfg, nil
}
