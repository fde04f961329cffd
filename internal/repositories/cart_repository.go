package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/config"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
	"github.com/redis/go-redis/v9"
)

// CartRepository persists the per-session cart between requests. Everything
// else this service shows is fetched from the backend on demand; the cart is
// the only state we own.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, bool, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("host", cfg.RedisConnect.Host), slog.String("port", cfg.RedisConnect.Port))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &redisCartRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *redisCartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, bool, error) {

	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get cart %s from redis: %w", sessionID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cart %s: %w", sessionID, err)
	}

	return &cart, true, nil
}

func (r *redisCartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cart.SessionID, err)
	}

	// every write refreshes the session TTL
	if err := r.client.Set(ctx, cartKey(cart.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s in redis: %w", cart.SessionID, err)
	}

	return nil
}

func (r *redisCartRepository) DeleteCart(ctx context.Context, sessionID string) error {

	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s from redis: %w", sessionID, err)
	}

	return nil
}
