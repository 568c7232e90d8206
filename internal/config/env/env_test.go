package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundConfig_Defaults(t *testing.T) {
	cfg, err := ParseRoundConfig([]byte("other: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.BettingDuration())
	assert.Equal(t, 5*time.Second, cfg.SpinningDuration())
	assert.Equal(t, 10*time.Second, cfg.ResultDuration())
	assert.Equal(t, 20, cfg.HistorySize())
	assert.Equal(t, 5, cfg.SettlementRetryAttempts())
	assert.Equal(t, 2*time.Second, cfg.SettlementRetryMaxElapsed())
	assert.Equal(t, 10*time.Second, cfg.SettlementTimeout())
}

func TestParseRoundConfig_Overrides(t *testing.T) {
	data := []byte(`
roulette:
  betting_duration: 20s
  spinning_duration: 3s
  result_duration: 1500ms
  history_size: 5
  settlement_retry_attempts: 2
`)
	cfg, err := ParseRoundConfig(data)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.BettingDuration())
	assert.Equal(t, 3*time.Second, cfg.SpinningDuration())
	assert.Equal(t, 1500*time.Millisecond, cfg.ResultDuration())
	assert.Equal(t, 5, cfg.HistorySize())
	assert.Equal(t, 2, cfg.SettlementRetryAttempts())
}

func TestParseRoundConfig_RejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero duration", "roulette:\n  betting_duration: 0s\n"},
		{"negative duration", "roulette:\n  result_duration: -1s\n"},
		{"zero history", "roulette:\n  history_size: 0\n"},
		{"zero attempts", "roulette:\n  settlement_retry_attempts: 0\n"},
		{"broken yaml", "roulette: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoundConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNewRoundConfigFromYAML_MissingFile(t *testing.T) {
	cfg, err := NewRoundConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.BettingDuration())
}

func TestNewRoundConfigFromYAML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roulette:\n  spinning_duration: 7s\n"), 0o600))

	cfg, err := NewRoundConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.SpinningDuration())
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "")
	t.Setenv(httpPortEnvName, "")
	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())

	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9000")
	cfg, err = NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())

	t.Setenv(httpPortEnvName, "http")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv(pgDSNEnvName, "")
	t.Setenv(pgMaxConnsEnvName, "")
	t.Setenv(pgConnectTimeoutEnvName, "")
	_, err := NewPGConfig()
	assert.Error(t, err)

	t.Setenv(pgDSNEnvName, "postgres://localhost/roulette")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/roulette", cfg.DSN())
	assert.Equal(t, int32(0), cfg.MaxConns())
	assert.Equal(t, defaultPGConnectTimeout, cfg.ConnectTimeout())

	t.Setenv(pgMaxConnsEnvName, "12")
	t.Setenv(pgConnectTimeoutEnvName, "2s")
	cfg, err = NewPGConfig()
	require.NoError(t, err)
	poolCfg, err := cfg.PoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(12), poolCfg.MaxConns)
	assert.Equal(t, 2*time.Second, poolCfg.ConnConfig.ConnectTimeout)
}

func TestNewPGConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		maxConns string
		timeout  string
	}{
		{name: "malformed dsn", dsn: "postgres://localhost:notaport/roulette"},
		{name: "negative max conns", dsn: "postgres://localhost/roulette", maxConns: "-1"},
		{name: "max conns overflow", dsn: "postgres://localhost/roulette", maxConns: "4294967296"},
		{name: "max conns not a number", dsn: "postgres://localhost/roulette", maxConns: "ten"},
		{name: "zero timeout", dsn: "postgres://localhost/roulette", timeout: "0s"},
		{name: "bad timeout", dsn: "postgres://localhost/roulette", timeout: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(pgDSNEnvName, tt.dsn)
			t.Setenv(pgMaxConnsEnvName, tt.maxConns)
			t.Setenv(pgConnectTimeoutEnvName, tt.timeout)

			_, err := NewPGConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv(accessTokenKeyEnvName, "secret")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
}

func TestNewLoggerConfig(t *testing.T) {
	t.Setenv(envEnvName, "")
	cfg, err := NewLoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env())

	t.Setenv(envEnvName, "prod")
	cfg, err = NewLoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env())

	t.Setenv(envEnvName, "staging")
	_, err = NewLoggerConfig()
	assert.Error(t, err)
}
