package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/testutils"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {

	t.Run("No Session Maps To 401", func(t *testing.T) {
		// Arrange
		mockBackend := testutils.NewMockBackendClient()
		authMiddleware := middleware.NewAuthMiddleware(mockBackend)

		mockBackend.On("Profile", mock.Anything).
			Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "Not authorized"}).Once()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a session")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Non Admin Maps To 403", func(t *testing.T) {
		// Arrange
		mockBackend := testutils.NewMockBackendClient()
		authMiddleware := middleware.NewAuthMiddleware(mockBackend)

		mockBackend.On("Profile", mock.Anything).
			Return(&models.User{ID: "u1", Name: "Asha", IsAdmin: false}, nil).Once()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for non-admins")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin Passes Through With User In Context", func(t *testing.T) {
		// Arrange
		mockBackend := testutils.NewMockBackendClient()
		authMiddleware := middleware.NewAuthMiddleware(mockBackend)

		admin := &models.User{ID: "u9", Name: "Root", IsAdmin: true}
		mockBackend.On("Profile", mock.Anything).Return(admin, nil).Once()

		var capturedUser *models.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedUser, _ = middleware.UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, capturedUser)
		assert.Equal(t, "u9", capturedUser.ID)
	})
}

func TestCredentials(t *testing.T) {

	t.Run("Cookie Header Is Forwarded Via Context", func(t *testing.T) {
		// Arrange
		var capturedCookie string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedCookie = backend.CredentialsFromContext(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/profile", nil)
		req.Header.Set("Cookie", "jwt=token-value")
		rec := httptest.NewRecorder()

		// Act
		middleware.Credentials(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, "jwt=token-value", capturedCookie)
	})
}
