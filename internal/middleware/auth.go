package middleware

import (
	"context"
	"net/http"
	"strings"

	"roulette_backend/pkg/resp"
	"roulette_backend/pkg/token"
)

type ctxKey struct{}

// Auth - проверяет Bearer токен и кладет ID участника в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				resp.WriteError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := token.UserID(tokenStr, secretKey)
			if err != nil {
				resp.WriteError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int64)
	return userID, ok
}
