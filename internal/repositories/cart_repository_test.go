package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	repository "github.com/paramatmakhadka/ecommerce-frontend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart() *models.Cart {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &models.Cart{
		SessionID: "sess-1",
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Hoodie", Price: 49.99, Qty: 2, Image: "/uploads/hoodie.png"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, time.Hour)

		want := testCart()
		data, err := json.Marshal(want)
		require.NoError(t, err)

		mock.ExpectGet("cart:sess-1").SetVal(string(data))

		cart, found, err := repo.GetCart(ctx, "sess-1")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, cart)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Session Is Not An Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, time.Hour)

		mock.ExpectGet("cart:sess-404").RedisNil()

		cart, found, err := repo.GetCart(ctx, "sess-404")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, cart)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis Failure", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, time.Hour)

		mock.ExpectGet("cart:sess-1").SetErr(errors.New("connection reset"))

		_, found, err := repo.GetCart(ctx, "sess-1")

		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Corrupt Payload", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, time.Hour)

		mock.ExpectGet("cart:sess-1").SetVal("{not json")

		_, _, err := repo.GetCart(ctx, "sess-1")

		assert.Error(t, err)
	})
}

func TestSaveCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Refreshes TTL", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, 30*time.Minute)

		cart := testCart()
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:sess-1", data, 30*time.Minute).SetVal("OK")

		assert.NoError(t, repo.SaveCart(ctx, cart))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis Failure", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := repository.NewCartRepository(db, 30*time.Minute)

		cart := testCart()
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:sess-1", data, 30*time.Minute).SetErr(errors.New("readonly replica"))

		assert.Error(t, repo.SaveCart(ctx, cart))
	})
}

func TestDeleteCart(t *testing.T) {
	ctx := context.Background()

	db, mock := redismock.NewClientMock()
	repo := repository.NewCartRepository(db, time.Hour)

	mock.ExpectDel("cart:sess-1").SetVal(1)

	assert.NoError(t, repo.DeleteCart(ctx, "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
