package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims - claims access токена, ID участника лежит в Subject
type UserClaims struct {
	jwt.RegisteredClaims
}
