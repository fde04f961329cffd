package testutils

import (
	"context"
	"net/http"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockCartService is a testify mock for the cart engine, used by handler tests.
type MockCartService struct {
	mock.Mock
}

func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, product *models.Product, qty int) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, product, qty)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, productID, qty)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, productID string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, productID)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, code)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) RemoveCoupon(ctx context.Context, sessionID string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) SetNote(ctx context.Context, sessionID, note string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, note)

	if view, ok := args.Get(0).(*service.CartView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) Checkout(ctx context.Context, sessionID string) (*service.CheckoutHandoff, error) {
	args := m.Called(ctx, sessionID)

	if handoff, ok := args.Get(0).(*service.CheckoutHandoff); ok {
		return handoff, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCatalogService is a testify mock for the catalog proxy.
type MockCatalogService struct {
	mock.Mock
}

func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{}
}

func (m *MockCatalogService) ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error) {
	args := m.Called(ctx, keyword, category)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogService) RelatedProducts(ctx context.Context, id string) ([]models.Product, error) {
	args := m.Called(ctx, id)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockAdminService is a testify mock for the admin aggregation service.
type MockAdminService struct {
	mock.Mock
}

func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

func (m *MockAdminService) Dashboard(ctx context.Context, query string) (*models.AdminDashboard, error) {
	args := m.Called(ctx, query)

	if dashboard, ok := args.Get(0).(*models.AdminDashboard); ok {
		return dashboard, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) DeleteProduct(ctx context.Context, id string) ([]models.Product, error) {
	args := m.Called(ctx, id)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) DeleteCategory(ctx context.Context, id string) ([]models.Category, error) {
	args := m.Called(ctx, id)

	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, id string) ([]models.User, error) {
	args := m.Called(ctx, id)

	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) DeleteOrder(ctx context.Context, id string) ([]models.Order, error) {
	args := m.Called(ctx, id)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) DeleteCoupon(ctx context.Context, id string) ([]models.Coupon, error) {
	args := m.Called(ctx, id)

	if coupons, ok := args.Get(0).([]models.Coupon); ok {
		return coupons, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) ([]models.Coupon, error) {
	args := m.Called(ctx, req)

	if coupons, ok := args.Get(0).([]models.Coupon); ok {
		return coupons, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserService is a testify mock for the session proxy.
type MockUserService struct {
	mock.Mock
}

func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.User)
	cookies, _ := args.Get(1).([]*http.Cookie)

	return user, cookies, args.Error(2)
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.User)
	cookies, _ := args.Get(1).([]*http.Cookie)

	return user, cookies, args.Error(2)
}

func (m *MockUserService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUserService) Profile(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)

	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}
