package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

// AdminService aggregates the six admin resources. Deletes and the coupon form
// round-trip to the backend and refetch the affected list; search filtering is
// purely in-memory.
type AdminService interface {
	Dashboard(ctx context.Context, query string) (*models.AdminDashboard, error)
	DeleteProduct(ctx context.Context, id string) ([]models.Product, error)
	DeleteCategory(ctx context.Context, id string) ([]models.Category, error)
	DeleteUser(ctx context.Context, id string) ([]models.User, error)
	DeleteOrder(ctx context.Context, id string) ([]models.Order, error)
	DeleteCoupon(ctx context.Context, id string) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) ([]models.Coupon, error)
}

type adminService struct {
	backend backend.Client
}

func NewAdminService(client backend.Client) AdminService {
	return &adminService{backend: client}
}

// Dashboard fetches all six resources independently. A failing resource is
// logged and rendered empty; it never blocks the others.
func (s *adminService) Dashboard(ctx context.Context, query string) (*models.AdminDashboard, error) {

	logger := middleware.LoggerFromContext(ctx)

	dashboard := &models.AdminDashboard{
		Products:   []models.Product{},
		Categories: []models.Category{},
		Users:      []models.User{},
		Orders:     []models.Order{},
		Coupons:    []models.Coupon{},
	}

	var wg sync.WaitGroup

	fetch := func(resource string, fn func() error) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := fn(); err != nil {
				logger.Error("Admin resource fetch failed", slog.String("resource", resource), slog.String("error", err.Error()))
			}
		}()
	}

	fetch("products", func() error {
		products, err := s.backend.ListProducts(ctx, "", "")
		if err != nil {
			return err
		}
		dashboard.Products = products

		return nil
	})

	fetch("categories", func() error {
		categories, err := s.backend.ListCategories(ctx)
		if err != nil {
			return err
		}
		dashboard.Categories = categories

		return nil
	})

	fetch("users", func() error {
		users, err := s.backend.ListUsers(ctx)
		if err != nil {
			return err
		}
		dashboard.Users = users

		return nil
	})

	fetch("orders", func() error {
		orders, err := s.backend.ListOrders(ctx)
		if err != nil {
			return err
		}
		dashboard.Orders = orders

		return nil
	})

	fetch("coupons", func() error {
		coupons, err := s.backend.ListCoupons(ctx)
		if err != nil {
			return err
		}
		dashboard.Coupons = coupons

		return nil
	})

	fetch("stats", func() error {
		stats, err := s.backend.GetStats(ctx)
		if err != nil {
			return err
		}
		dashboard.Stats = stats

		return nil
	})

	wg.Wait()

	if query != "" {
		dashboard.Products = FilterProducts(dashboard.Products, query)
		dashboard.Categories = FilterCategories(dashboard.Categories, query)
		dashboard.Users = FilterUsers(dashboard.Users, query)
		dashboard.Orders = FilterOrders(dashboard.Orders, query)
		dashboard.Coupons = FilterCoupons(dashboard.Coupons, query)
	}

	return dashboard, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) ([]models.Product, error) {

	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return nil, mapBackendError(err)
	}

	products, err := s.backend.ListProducts(ctx, "", "")
	if err != nil {
		return nil, mapBackendError(err)
	}

	return products, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id string) ([]models.Category, error) {

	if err := s.backend.DeleteCategory(ctx, id); err != nil {
		return nil, mapBackendError(err)
	}

	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return categories, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id string) ([]models.User, error) {

	if err := s.backend.DeleteUser(ctx, id); err != nil {
		return nil, mapBackendError(err)
	}

	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return users, nil
}

func (s *adminService) DeleteOrder(ctx context.Context, id string) ([]models.Order, error) {

	if err := s.backend.DeleteOrder(ctx, id); err != nil {
		return nil, mapBackendError(err)
	}

	orders, err := s.backend.ListOrders(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return orders, nil
}

func (s *adminService) DeleteCoupon(ctx context.Context, id string) ([]models.Coupon, error) {

	if err := s.backend.DeleteCoupon(ctx, id); err != nil {
		return nil, mapBackendError(err)
	}

	coupons, err := s.backend.ListCoupons(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return coupons, nil
}

func (s *adminService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) ([]models.Coupon, error) {

	if _, err := s.backend.CreateCoupon(ctx, req); err != nil {
		return nil, mapBackendError(err)
	}

	coupons, err := s.backend.ListCoupons(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}

	return coupons, nil
}
