package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/evandanowitz/movie-api/internal/domain"
	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/rs/zerolog"
)

type contextKey string

const userKey contextKey = "user"

// Auth guards a route: it authenticates the bearer token and rejects the
// request before the handler body runs. The resolved live identity is placed
// in the request context for ownership checks downstream.
func Auth(authService *service.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header")
				return
			}

			user, err := authService.AuthenticateToken(r.Context(), parts[1])
			if err != nil {
				if !errors.Is(err, service.ErrInvalidToken) {
					logger.Error().Err(err).Msg("token authentication failed")
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusUnauthorized)
}

// GetUser returns the authenticated identity stored by Auth.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
