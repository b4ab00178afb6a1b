package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/adkpi/kpi-dashboard-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths são as rotas de leitura do dashboard, abertas como na origem.
// Apenas operações que alteram o estado (upload, cron) exigem token.
var publicPaths = map[string]bool{
	"/healthcheck":        true,
	"/v1/login":           true,
	"/v1/kpis":            true,
	"/v1/kpis/campaigns":  true,
	"/v1/kpis/date-range": true,
	"/v1/kpis/metrics":    true,
	"/v1/kpis/export":     true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
