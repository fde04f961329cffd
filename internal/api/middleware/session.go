package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/config"
)

type sessionContextKey string

const cartSessionKey = sessionContextKey("cart_session")

// CartSession assigns every visitor a cart session cookie. The cart lives in
// our store under this ID; it is unrelated to the backend's auth session.
type CartSession struct {
	cfg *config.CartConfig
}

func NewCartSession(cfg *config.CartConfig) *CartSession {
	return &CartSession{cfg: cfg}
}

func (m *CartSession) Attach(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := ""

		if cookie, err := r.Cookie(m.cfg.CookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()

			http.SetCookie(w, &http.Cookie{
				Name:     m.cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(m.cfg.SessionTTL.Seconds()),
				HttpOnly: true,
				Secure:   m.cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), cartSessionKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func CartSessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(cartSessionKey).(string); ok {
		return sessionID
	}

	return ""
}

// WithCartSession is a test helper counterpart to Attach.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, cartSessionKey, sessionID)
}
