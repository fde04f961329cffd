package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, cookies, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email))
			response.Error(w, err)

			return
		}

		relayCookies(w, cookies)

		logger.Info("User logged in", slog.String("userId", user.ID))
		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, cookies, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		relayCookies(w, cookies)

		logger.Info("User registered", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.userService.Logout(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"status": "logged out"})
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, err := h.userService.Profile(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// relayCookies passes the backend's Set-Cookie headers on to the browser; the
// session protocol is entirely the backend's.
func relayCookies(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		http.SetCookie(w, cookie)
	}
}
