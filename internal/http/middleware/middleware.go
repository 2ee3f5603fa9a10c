package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yeasin-dev/shopmate/internal/auth"
	rl "github.com/yeasin-dev/shopmate/internal/http/rate_limiter"
)

type contextKey string

const ownerIDKey = contextKey("owner_id")

// Auth validates the Bearer token and injects the owner id into the
// request context. Every owner-scoped handler reads it via OwnerID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authorization, "Bearer ")
		token, err := auth.ParseToken(tokenStr)
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ownerIDKey, int(sub))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerID returns the authenticated user's id, or 0 outside Auth.
func OwnerID(r *http.Request) int {
	if val, ok := r.Context().Value(ownerIDKey).(int); ok {
		return val
	}
	return 0
}

// RateLimit applies the per-client limiter keyed by remote IP.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
