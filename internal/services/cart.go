package service

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/pricing"
	repository "github.com/paramatmakhadka/ecommerce-frontend/internal/repositories"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
)

// CartView is a cart plus its freshly computed totals. Totals are derived on
// every read so they can never disagree with the items and coupon.
type CartView struct {
	Cart   *models.Cart   `json:"cart"`
	Totals pricing.Totals `json:"totals"`
}

// CheckoutHandoff tells the browser where to navigate; no payment happens here.
type CheckoutHandoff struct {
	URL    string         `json:"url"`
	Totals pricing.Totals `json:"totals"`
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, product *models.Product, qty int) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*CartView, error)
	SetNote(ctx context.Context, sessionID, note string) (*CartView, error)
	Checkout(ctx context.Context, sessionID string) (*CheckoutHandoff, error)
}

type cartService struct {
	repo        repository.CartRepository
	backend     backend.Client
	checkoutURL string
	sanitizer   *bluemonday.Policy
}

func NewCartService(repo repository.CartRepository, client backend.Client, checkoutURL string) CartService {
	return &cartService{
		repo:        repo,
		backend:     client,
		checkoutURL: checkoutURL,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *cartService) view(cart *models.Cart) *CartView {
	return &CartView{Cart: cart, Totals: pricing.Compute(cart.Items, cart.Coupon)}
}

func (s *cartService) load(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, found, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	if !found {
		now := time.Now()
		cart = &models.Cart{
			SessionID: sessionID,
			Items:     []models.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) error {

	cart.UpdatedAt = time.Now()

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return errors.StorageError("Failed to save cart").WithError(err)
	}

	return nil
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// AddItem inserts or updates a line item. The caller is expected to have
// clamped qty to [1, countInStock] already; the engine does not re-validate
// stock.
func (s *cartService) AddItem(ctx context.Context, sessionID string, product *models.Product, qty int) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if item := cart.Item(product.ID); item != nil {
		item.Qty = qty
		item.Price = product.Price
		item.Name = product.Name
		item.Image = product.Image
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       qty,
			Image:     product.Image,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// UpdateQuantity sets the quantity of an existing line. Zero removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cart.Item(productID) == nil {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	if qty == 0 {
		removeLine(cart, productID)
	} else {
		cart.Item(productID).Qty = qty
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// RemoveItem deletes a line item; removing an absent line is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removeLine(cart, productID)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// ApplyCoupon validates the code against the backend. On success the resolved
// discount becomes the active coupon; on any failure the active discount is
// cleared and the failure is reported, never retried.
func (s *cartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error) {

	code = strings.TrimSpace(s.sanitizer.Sanitize(code))

	if code == "" {
		return nil, errors.ValidationError("Please enter a coupon code")
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applied, validateErr := s.backend.ValidateCoupon(ctx, code)
	if validateErr != nil {

		// failed validation always resets the discount to neutral
		cart.Coupon = nil
		if err := s.save(ctx, cart); err != nil {
			return nil, err
		}

		return nil, mapBackendError(validateErr)
	}

	cart.Coupon = applied

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) RemoveCoupon(ctx context.Context, sessionID string) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Coupon = nil

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) SetNote(ctx context.Context, sessionID, note string) (*CartView, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SpecialNote = s.sanitizer.Sanitize(note)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) Checkout(ctx context.Context, sessionID string) (*CheckoutHandoff, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	return &CheckoutHandoff{
		URL:    s.checkoutURL,
		Totals: pricing.Compute(cart.Items, cart.Coupon),
	}, nil
}

func removeLine(cart *models.Cart, productID string) {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return
		}
	}
}
