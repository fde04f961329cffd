package testutils

import (
	"context"
	"net/http"
	"strings"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBackendClient is a testify mock for the commerce backend client.
type MockBackendClient struct {
	mock.Mock
}

func NewMockBackendClient() *MockBackendClient {
	return &MockBackendClient{}
}

const mockBaseURL = "https://api.test"

func (m *MockBackendClient) ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error) {
	args := m.Called(ctx, keyword, category)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackendClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackendClient) ValidateCoupon(ctx context.Context, code string) (*models.AppliedCoupon, error) {
	args := m.Called(ctx, code)

	if applied, ok := args.Get(0).(*models.AppliedCoupon); ok {
		return applied, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	args := m.Called(ctx)

	if coupons, ok := args.Get(0).([]models.Coupon); ok {
		return coupons, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	args := m.Called(ctx, req)

	if coupon, ok := args.Get(0).(*models.Coupon); ok {
		return coupon, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) DeleteCoupon(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackendClient) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)

	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackendClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackendClient) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)

	if stats, ok := args.Get(0).(*models.DashboardStats); ok {
		return stats, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBackendClient) Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.User)
	cookies, _ := args.Get(1).([]*http.Cookie)

	return user, cookies, args.Error(2)
}

func (m *MockBackendClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error) {
	args := m.Called(ctx, req)

	user, _ := args.Get(0).(*models.User)
	cookies, _ := args.Get(1).([]*http.Cookie)

	return user, cookies, args.Error(2)
}

func (m *MockBackendClient) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBackendClient) Profile(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)

	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// ResolveImageURL mirrors the real client against a fixed test base URL, so
// assertions on image rewriting stay readable.
func (m *MockBackendClient) ResolveImageURL(image string) string {

	if image == "" {
		return ""
	}

	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}

	return mockBaseURL + image
}

func (m *MockBackendClient) BaseURL() string {
	return mockBaseURL
}

// MockCartRepository is a testify mock for the cart session store.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

func (m *MockCartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, bool, error) {
	args := m.Called(ctx, sessionID)

	cart, _ := args.Get(0).(*models.Cart)

	return cart, args.Bool(1), args.Error(2)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
