package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils/response"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

type userContextKey string

const UserContextKey = userContextKey("user")

// AuthMiddleware gates requests on the backend's cookie session. There is no
// token handling here; the backend decides who the caller is via
// /api/users/profile and we act on its answer.
type AuthMiddleware struct {
	backend backend.Client
}

func NewAuthMiddleware(client backend.Client) *AuthMiddleware {
	return &AuthMiddleware{backend: client}
}

// Credentials copies the browser's Cookie header into the context so every
// outbound backend call carries the caller's session.
func Credentials(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		ctx := backend.WithCredentials(r.Context(), r.Header.Get("Cookie"))

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.HandlerFunc {
	return m.require(next, false)
}

func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return m.require(next, true)
}

func (m *AuthMiddleware) require(next http.Handler, admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		user, err := m.backend.Profile(r.Context())
		if err != nil {
			logger.Warn("Session check failed", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Please log in"))

			return
		}

		if admin && !user.IsAdmin {
			logger.Warn("Admin access denied", slog.String("userId", user.ID))
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)

		requestScopedLogger := logger.With(slog.String("userId", user.ID))
		ctx = context.WithValue(ctx, loggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)

	return user, ok
}
