package service

import (
	"context"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

type CatalogService interface {
	ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	RelatedProducts(ctx context.Context, id string) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	backend backend.Client
}

func NewCatalogService(client backend.Client) CatalogService {
	return &catalogService{backend: client}
}

func (s *catalogService) ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error) {

	products, err := s.backend.ListProducts(ctx, keyword, category)
	if err != nil {
		return nil, mapBackendError(err)
	}

	s.resolveImages(products)

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	product, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, mapBackendError(err)
	}

	product.Image = s.backend.ResolveImageURL(product.Image)

	return product, nil
}

// RelatedProducts lists products sharing the product's category, excluding the
// product itself.
func (s *catalogService) RelatedProducts(ctx context.Context, id string) ([]models.Product, error) {

	product, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, mapBackendError(err)
	}

	sameCategory, err := s.backend.ListProducts(ctx, "", product.Category)
	if err != nil {
		return nil, mapBackendError(err)
	}

	related := make([]models.Product, 0, len(sameCategory))

	for _, p := range sameCategory {
		if p.ID != product.ID {
			related = append(related, p)
		}
	}

	s.resolveImages(related)

	return related, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return categories, nil
}

func (s *catalogService) resolveImages(products []models.Product) {
	for i := range products {
		products[i].Image = s.backend.ResolveImageURL(products[i].Image)
	}
}
