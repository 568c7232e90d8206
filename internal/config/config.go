package config

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type RoundConfig interface {
	BettingDuration() time.Duration
	SpinningDuration() time.Duration
	ResultDuration() time.Duration
	HistorySize() int
	SettlementRetryAttempts() int
	SettlementRetryInitialInterval() time.Duration
	SettlementRetryMaxElapsed() time.Duration
	SettlementTimeout() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
	ConnectTimeout() time.Duration
	PoolConfig() (*pgxpool.Config, error)
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
}

type LoggerConfig interface {
	Env() string
}
