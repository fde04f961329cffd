package handlers

import (
	"net/http"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// for eg: GET /products?keyword=shirt or GET /products?category=clothing
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		keyword := r.URL.Query().Get("keyword")
		category := r.URL.Query().Get("category")

		products, err := h.catalogService.ListProducts(r.Context(), keyword, category)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) RelatedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		related, err := h.catalogService.RelatedProducts(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, related)
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}
