package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"roulette_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultBettingDuration      = 15 * time.Second
	defaultSpinningDuration     = 5 * time.Second
	defaultResultDuration       = 10 * time.Second
	defaultHistorySize          = 20
	defaultRetryAttempts        = 5
	defaultRetryInitialInterval = 100 * time.Millisecond
	defaultRetryMaxElapsed      = 2 * time.Second
	defaultSettlementTimeout    = 10 * time.Second
)

type roundFile struct {
	Roulette roundYAML `yaml:"roulette"`
}

type roundYAML struct {
	BettingDuration      *time.Duration `yaml:"betting_duration"`
	SpinningDuration     *time.Duration `yaml:"spinning_duration"`
	ResultDuration       *time.Duration `yaml:"result_duration"`
	HistorySize          *int           `yaml:"history_size"`
	RetryAttempts        *int           `yaml:"settlement_retry_attempts"`
	RetryInitialInterval *time.Duration `yaml:"settlement_retry_initial_interval"`
	RetryMaxElapsed      *time.Duration `yaml:"settlement_retry_max_elapsed"`
	SettlementTimeout    *time.Duration `yaml:"settlement_timeout"`
}

type roundConfig struct {
	betting              time.Duration
	spinning             time.Duration
	result               time.Duration
	historySize          int
	retryAttempts        int
	retryInitialInterval time.Duration
	retryMaxElapsed      time.Duration
	settlementTimeout    time.Duration
}

// NewDefaultRoundConfig - конфиг раунда со значениями по умолчанию
func NewDefaultRoundConfig() config.RoundConfig {
	return &roundConfig{
		betting:              defaultBettingDuration,
		spinning:             defaultSpinningDuration,
		result:               defaultResultDuration,
		historySize:          defaultHistorySize,
		retryAttempts:        defaultRetryAttempts,
		retryInitialInterval: defaultRetryInitialInterval,
		retryMaxElapsed:      defaultRetryMaxElapsed,
		settlementTimeout:    defaultSettlementTimeout,
	}
}

// NewRoundConfigFromYAML - читает секцию roulette из YAML файла.
// Отсутствующие поля берутся по умолчанию, отсутствующий файл дает конфиг по умолчанию
func NewRoundConfigFromYAML(path string) (config.RoundConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultRoundConfig(), nil
		}
		return nil, fmt.Errorf("read round config: %w", err)
	}

	return ParseRoundConfig(data)
}

// ParseRoundConfig - разбор YAML с секцией roulette
func ParseRoundConfig(data []byte) (config.RoundConfig, error) {
	var file roundFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse round config: %w", err)
	}

	cfg := NewDefaultRoundConfig().(*roundConfig)
	y := file.Roulette

	durations := []struct {
		name string
		src  *time.Duration
		dst  *time.Duration
	}{
		{"betting_duration", y.BettingDuration, &cfg.betting},
		{"spinning_duration", y.SpinningDuration, &cfg.spinning},
		{"result_duration", y.ResultDuration, &cfg.result},
		{"settlement_retry_initial_interval", y.RetryInitialInterval, &cfg.retryInitialInterval},
		{"settlement_retry_max_elapsed", y.RetryMaxElapsed, &cfg.retryMaxElapsed},
		{"settlement_timeout", y.SettlementTimeout, &cfg.settlementTimeout},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		if *d.src <= 0 {
			return nil, fmt.Errorf("%s must be positive", d.name)
		}
		*d.dst = *d.src
	}

	if y.HistorySize != nil {
		if *y.HistorySize <= 0 {
			return nil, errors.New("history_size must be positive")
		}
		cfg.historySize = *y.HistorySize
	}
	if y.RetryAttempts != nil {
		if *y.RetryAttempts <= 0 {
			return nil, errors.New("settlement_retry_attempts must be positive")
		}
		cfg.retryAttempts = *y.RetryAttempts
	}

	return cfg, nil
}

func (cfg *roundConfig) BettingDuration() time.Duration {
	return cfg.betting
}

func (cfg *roundConfig) SpinningDuration() time.Duration {
	return cfg.spinning
}

func (cfg *roundConfig) ResultDuration() time.Duration {
	return cfg.result
}

func (cfg *roundConfig) HistorySize() int {
	return cfg.historySize
}

func (cfg *roundConfig) SettlementRetryAttempts() int {
	return cfg.retryAttempts
}

func (cfg *roundConfig) SettlementRetryInitialInterval() time.Duration {
	return cfg.retryInitialInterval
}

func (cfg *roundConfig) SettlementRetryMaxElapsed() time.Duration {
	return cfg.retryMaxElapsed
}

func (cfg *roundConfig) SettlementTimeout() time.Duration {
	return cfg.settlementTimeout
}
