package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	appErrors "github.com/paramatmakhadka/ecommerce-frontend/internal/errors"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/testutils"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "sess-1"

func storedCart(items ...models.CartItem) *models.Cart {
	return &models.Cart{
		SessionID: sessionID,
		Items:     items,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("New Session Gets An Empty Cart", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		mockRepo.On("GetCart", ctx, sessionID).Return(nil, false, nil).Once()

		// Act
		view, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, sessionID, view.Cart.SessionID)
		assert.Empty(t, view.Cart.Items)
		assert.Equal(t, 0.0, view.Totals.Total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Totals Are Recomputed On Every Read", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
		cart.Coupon = &models.AppliedCoupon{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10}

		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()

		// Act
		view, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.InDelta(t, 200.0, view.Totals.Subtotal, 1e-9)
		assert.InDelta(t, 20.0, view.Totals.DiscountAmount, 1e-9)
		assert.InDelta(t, 203.40, view.Totals.Total, 1e-9)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		storeErr := errors.New("connection reset")
		mockRepo.On("GetCart", ctx, sessionID).Return(nil, false, storeErr).Once()

		// Act
		view, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.Nil(t, view)
		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeStorage, appErr.Code)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	product := &models.Product{ID: "p1", Name: "Hoodie", Price: 49.99, Image: "/uploads/h.png", CountInStock: 5}

	t.Run("Success - New Line", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		mockRepo.On("GetCart", ctx, sessionID).Return(nil, false, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.AddItem(ctx, sessionID, product, 2)

		// Assert
		assert.NoError(t, err)
		require.Len(t, view.Cart.Items, 1)
		assert.Equal(t, "p1", view.Cart.Items[0].ProductID)
		assert.Equal(t, 2, view.Cart.Items[0].Qty)
		assert.InDelta(t, 99.98, view.Totals.Subtotal, 1e-9)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Existing Line Is Updated In Place", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Name: "Hoodie", Price: 39.99, Qty: 1})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.AddItem(ctx, sessionID, product, 3)

		// Assert
		assert.NoError(t, err)
		require.Len(t, view.Cart.Items, 1)
		assert.Equal(t, 3, view.Cart.Items[0].Qty)
		assert.Equal(t, 49.99, view.Cart.Items[0].Price) // refreshed from the product
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Save Error", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		mockRepo.On("GetCart", ctx, sessionID).Return(nil, false, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(errors.New("oom")).Once()

		// Act
		view, err := cartService.AddItem(ctx, sessionID, product, 1)

		// Assert
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorage, appErr.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Quantity Changed", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 10, Qty: 1})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.UpdateQuantity(ctx, sessionID, "p1", 4)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 4, view.Cart.Items[0].Qty)
		assert.InDelta(t, 40.0, view.Totals.Subtotal, 1e-9)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Zero Quantity Removes The Line", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(
			models.CartItem{ProductID: "p1", Price: 10, Qty: 1},
			models.CartItem{ProductID: "p2", Price: 20, Qty: 2},
		)
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.UpdateQuantity(ctx, sessionID, "p1", 0)

		// Assert
		assert.NoError(t, err)
		require.Len(t, view.Cart.Items, 1)
		assert.Equal(t, "p2", view.Cart.Items[0].ProductID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Item Not In Cart", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		mockRepo.On("GetCart", ctx, sessionID).Return(storedCart(), true, nil).Once()

		// Act
		view, err := cartService.UpdateQuantity(ctx, sessionID, "ghost", 2)

		// Assert
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes The Line", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 10, Qty: 1})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.RemoveItem(ctx, sessionID, "p1")

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, view.Cart.Items)
		assert.Equal(t, 0.0, view.Totals.Total)
	})

	t.Run("Absent Line Is A No-Op", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 10, Qty: 1})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		view, err := cartService.RemoveItem(ctx, sessionID, "ghost")

		// Assert
		assert.NoError(t, err)
		assert.Len(t, view.Cart.Items, 1)
	})
}

func TestApplyCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Coupon Becomes Active", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()
		mockBackend.On("ValidateCoupon", ctx, "FLAT50").
			Return(&models.AppliedCoupon{Code: "FLAT50", DiscountType: models.DiscountAmount, DiscountValue: 50}, nil).Once()

		// Act
		view, err := cartService.ApplyCoupon(ctx, sessionID, "FLAT50")

		// Assert
		assert.NoError(t, err)
		require.NotNil(t, view.Cart.Coupon)
		assert.Equal(t, "FLAT50", view.Cart.Coupon.Code)
		assert.InDelta(t, 50.0, view.Totals.DiscountAmount, 1e-9)
		assert.InDelta(t, 169.50, view.Totals.Total, 1e-9)
		mockBackend.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejection Clears The Active Coupon And Passes The Message Through", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
		cart.Coupon = &models.AppliedCoupon{Code: "OLD10", DiscountType: models.DiscountPercentage, DiscountValue: 10}

		var saved *models.Cart

		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Cart) }).
			Return(nil).Once()
		mockBackend.On("ValidateCoupon", ctx, "BOGUS").
			Return(nil, &backend.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid coupon code"}).Once()

		// Act
		view, err := cartService.ApplyCoupon(ctx, sessionID, "BOGUS")

		// Assert
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Invalid coupon code", appErr.Message)

		// the previously applied coupon is gone from the stored cart
		require.NotNil(t, saved)
		assert.Nil(t, saved.Coupon)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Backend Down - Coupon Cleared, Unavailable Error", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()
		mockBackend.On("ValidateCoupon", ctx, "SAVE10").Return(nil, errors.New("dial tcp: connection refused")).Once()

		// Act
		_, err := cartService.ApplyCoupon(ctx, sessionID, "SAVE10")

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnavailable, appErr.Code)
	})

	t.Run("Empty Code Never Reaches The Backend", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		// Act
		_, err := cartService.ApplyCoupon(ctx, sessionID, "   ")

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockBackend.AssertNotCalled(t, "ValidateCoupon", mock.Anything, mock.Anything)
	})
}

func TestRemoveCoupon(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mockRepo := testutils.NewMockCartRepository()
	mockBackend := testutils.NewMockBackendClient()
	cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

	cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
	cart.Coupon = &models.AppliedCoupon{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10}

	mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()
	mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	// Act
	view, err := cartService.RemoveCoupon(ctx, sessionID)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, view.Cart.Coupon)
	assert.InDelta(t, 0.0, view.Totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 226.0, view.Totals.Total, 1e-9) // back to the undiscounted value
}

func TestSetNote(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mockRepo := testutils.NewMockCartRepository()
	mockBackend := testutils.NewMockBackendClient()
	cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

	mockRepo.On("GetCart", ctx, sessionID).Return(storedCart(), true, nil).Once()
	mockRepo.On("SaveCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	// Act
	view, err := cartService.SetNote(ctx, sessionID, `Gift wrap please <script>alert(1)</script>`)

	// Assert
	assert.NoError(t, err)
	assert.NotContains(t, view.Cart.SpecialNote, "<script>")
	assert.Contains(t, view.Cart.SpecialNote, "Gift wrap please")
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Handoff With Totals Snapshot", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "https://shop.example.com/checkout")

		cart := storedCart(models.CartItem{ProductID: "p1", Price: 100, Qty: 2})
		mockRepo.On("GetCart", ctx, sessionID).Return(cart, true, nil).Once()

		// Act
		handoff, err := cartService.Checkout(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "https://shop.example.com/checkout", handoff.URL)
		assert.InDelta(t, 226.0, handoff.Totals.Total, 1e-9)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		mockRepo := testutils.NewMockCartRepository()
		mockBackend := testutils.NewMockBackendClient()
		cartService := service.NewCartService(mockRepo, mockBackend, "/checkout")

		mockRepo.On("GetCart", ctx, sessionID).Return(nil, false, nil).Once()

		// Act
		handoff, err := cartService.Checkout(ctx, sessionID)

		// Assert
		assert.Nil(t, handoff)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}
