package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils/response"
)

type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New()}
}

// for eg: GET /admin/dashboard?q=hoodie
func (h *AdminHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		dashboard, err := h.adminService.Dashboard(r.Context(), query)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, dashboard)
	}
}

func (h *AdminHandler) CreateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		coupons, err := h.adminService.CreateCoupon(r.Context(), &req)
		if err != nil {
			logger.Error("Coupon creation failed", slog.String("code", req.Code), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon created", slog.String("code", req.Code))
		response.Success(w, http.StatusCreated, coupons)
	}
}

func (h *AdminHandler) DeleteProduct() http.HandlerFunc {
	return h.delete("product", func(r *http.Request, id string) (any, error) {
		return h.adminService.DeleteProduct(r.Context(), id)
	})
}

func (h *AdminHandler) DeleteCategory() http.HandlerFunc {
	return h.delete("category", func(r *http.Request, id string) (any, error) {
		return h.adminService.DeleteCategory(r.Context(), id)
	})
}

func (h *AdminHandler) DeleteUser() http.HandlerFunc {
	return h.delete("user", func(r *http.Request, id string) (any, error) {
		return h.adminService.DeleteUser(r.Context(), id)
	})
}

func (h *AdminHandler) DeleteOrder() http.HandlerFunc {
	return h.delete("order", func(r *http.Request, id string) (any, error) {
		return h.adminService.DeleteOrder(r.Context(), id)
	})
}

func (h *AdminHandler) DeleteCoupon() http.HandlerFunc {
	return h.delete("coupon", func(r *http.Request, id string) (any, error) {
		return h.adminService.DeleteCoupon(r.Context(), id)
	})
}

// delete runs the backend delete and answers with the refetched list, so the
// table the admin is looking at is fresh without a second request.
func (h *AdminHandler) delete(resource string, fn func(r *http.Request, id string) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("ID is required"))
			return
		}

		list, err := fn(r, id)
		if err != nil {
			logger.Error("Delete failed", slog.String("resource", resource), slog.String("id", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Resource deleted", slog.String("resource", resource), slog.String("id", id))
		response.Success(w, http.StatusOK, list)
	}
}
