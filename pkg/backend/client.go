// Package backend is the HTTP client for the remote commerce API. Every
// resource this service exposes (catalog, coupons, users, orders, stats) lives
// behind that API; this package only does the wire work and error mapping.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client defines the calls the storefront and admin views make against the
// commerce backend.
type Client interface {
	ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ValidateCoupon(ctx context.Context, code string) (*models.AppliedCoupon, error)
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)

	ResolveImageURL(image string) string
	BaseURL() string
}

// APIError is a non-2xx answer from the backend. Message is the backend's own
// message, passed through verbatim so the user sees what the server said.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the backend at baseURL. A trailing slash on baseURL
// would produce double-slash paths, so it is stripped here as well.
func New(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *client) BaseURL() string {
	return c.baseURL
}

// ResolveImageURL leaves absolute URLs alone and joins relative ones with the
// API base URL.
func (c *client) ResolveImageURL(image string) string {

	if image == "" {
		return ""
	}

	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}

	return c.baseURL + image
}

func (c *client) ListProducts(ctx context.Context, keyword, category string) ([]models.Product, error) {

	query := url.Values{}
	if keyword != "" {
		query.Set("keyword", keyword)
	}

	if category != "" {
		query.Set("category", category)
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", query, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *client) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) ListCategories(ctx context.Context) ([]models.Category, error) {

	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) ValidateCoupon(ctx context.Context, code string) (*models.AppliedCoupon, error) {

	var applied models.AppliedCoupon

	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/api/coupons/validate", nil, body, &applied); err != nil {
		return nil, err
	}

	return &applied, nil
}

func (c *client) ListCoupons(ctx context.Context) ([]models.Coupon, error) {

	var coupons []models.Coupon
	if err := c.do(ctx, http.MethodGet, "/api/coupons", nil, nil, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

func (c *client) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {

	var coupon models.Coupon
	if err := c.do(ctx, http.MethodPost, "/api/coupons", nil, req, &coupon); err != nil {
		return nil, err
	}

	return &coupon, nil
}

func (c *client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/coupons/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) ListUsers(ctx context.Context) ([]models.User, error) {

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) ListOrders(ctx context.Context) ([]models.Order, error) {

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil, nil)
}

func (c *client) GetStats(ctx context.Context) (*models.DashboardStats, error) {

	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *client) Login(ctx context.Context, req *models.LoginRequest) (*models.User, []*http.Cookie, error) {
	return c.doAuth(ctx, "/api/users/login", req)
}

func (c *client) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []*http.Cookie, error) {
	return c.doAuth(ctx, "/api/users/register", req)
}

func (c *client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/users/logout", nil, nil, nil)
}

func (c *client) Profile(ctx context.Context) (*models.User, error) {

	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// doAuth is do for the session endpoints, which additionally hand the backend's
// Set-Cookie headers back to the caller so the browser session can be relayed.
func (c *client) doAuth(ctx context.Context, path string, body any) (*models.User, []*http.Cookie, error) {

	resp, err := c.roundTrip(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, nil, err
	}

	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, nil, fmt.Errorf("decode backend response for %s: %w", path, err)
	}

	return &user, resp.Cookies(), nil
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {

	resp, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response for %s: %w", path, err)
	}

	return nil
}

func (c *client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body for %s: %w", path, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build backend request for %s: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/json")

	// forward the browser's session cookies upstream
	if cookies := CredentialsFromContext(ctx); cookies != "" {
		req.Header.Set("Cookie", cookies)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request %s %s: %w", method, path, err)
	}

	return resp, nil
}

func checkStatus(resp *http.Response) error {

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}

	return apiErr
}
