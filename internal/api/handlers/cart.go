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

type CartHandler struct {
	cartService    service.CartService
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(cartService service.CartService, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.CartSessionFromContext(r.Context())

		view, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// AddItem looks the product up first so the requested quantity can be clamped
// to [1, countInStock] before it reaches the cart engine.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.CartSessionFromContext(r.Context())

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			response.Error(w, err)
			return
		}

		if product.CountInStock < 1 {
			response.Error(w, errors.ValidationError("Product is out of stock"))
			return
		}

		qty := req.Qty
		if qty < 1 {
			qty = 1
		}

		if qty > product.CountInStock {
			qty = product.CountInStock
		}

		view, err := h.cartService.AddItem(r.Context(), sessionID, product, qty)
		if err != nil {
			logger.Error("Failed to add cart item", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added", slog.String("productId", product.ID), slog.Int("qty", qty))
		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.CartSessionFromContext(r.Context())

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.UpdateQuantity(r.Context(), sessionID, productID, req.Qty)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.CartSessionFromContext(r.Context())

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		view, err := h.cartService.RemoveItem(r.Context(), sessionID, productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.CartSessionFromContext(r.Context())

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.ApplyCoupon(r.Context(), sessionID, req.Code)
		if err != nil {
			// the failure is local to the coupon box; the message is the
			// server's own, passed through for the user
			logger.Info("Coupon rejected", slog.String("code", req.Code), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon applied", slog.String("code", view.Cart.Coupon.Code))
		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.CartSessionFromContext(r.Context())

		view, err := h.cartService.RemoveCoupon(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) SetNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.CartSessionFromContext(r.Context())

		var req models.CartNoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.SetNote(r.Context(), sessionID, req.Note)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.CartSessionFromContext(r.Context())

		handoff, err := h.cartService.Checkout(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Checkout handoff issued")
		response.Success(w, http.StatusOK, handoff)
	}
}
