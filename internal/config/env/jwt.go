package env

import (
	"errors"
	"os"

	"roulette_backend/internal/config"
)

const (
	accessTokenKeyEnvName = "ACCESS_TOKEN"
)

type jwtConfig struct {
	accessTokenSecretKey string
}

// NewJWTConfig - секрет для проверки access токенов участников.
// Токены выпускает внешний сервис авторизации
func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, errors.New("access token secret key not found")
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}
