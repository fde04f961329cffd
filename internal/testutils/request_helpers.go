package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
)

// CreateTestRequestWithSession builds a request carrying a cart session in its
// context, the way the session middleware would.
func CreateTestRequestWithSession(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	ctx := middleware.WithCartSession(req.Context(), sessionID)

	return req.WithContext(ctx)
}
