package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/handlers"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/api/middleware"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/config"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/health"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/metrics"
	repository "github.com/paramatmakhadka/ecommerce-frontend/internal/repositories"
	service "github.com/paramatmakhadka/ecommerce-frontend/internal/services"
	"github.com/paramatmakhadka/ecommerce-frontend/pkg/backend"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	if cfg.Tracing.Enabled {
		shutdown, err := setupTracing(cfg)
		if err != nil {
			slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer shutdown()
	}

	// Redis setup (cart session store)
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	cartRepo := repository.NewCartRepository(redisClient, cfg.Cart.SessionTTL)

	// Backend client and services
	backendClient := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	cartService := service.NewCartService(cartRepo, backendClient, cfg.Backend.CheckoutURL)
	catalogService := service.NewCatalogService(backendClient)
	adminService := service.NewAdminService(backendClient)
	userService := service.NewUserService(backendClient)

	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	adminHandler := handlers.NewAdminHandler(adminService)
	userHandler := handlers.NewUserHandler(userService)

	cartSession := middleware.NewCartSession(&cfg.Cart)
	authMiddleware := middleware.NewAuthMiddleware(backendClient)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error building health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("services initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend.BaseURL))

	// Setup router
	routerMux := http.NewServeMux()

	// catalog
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/related", catalogHandler.RelatedProducts())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())

	// cart
	routerMux.HandleFunc("GET /api/v1/cart", cartSession.Attach(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", cartSession.Attach(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartSession.Attach(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartSession.Attach(cartHandler.RemoveItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/note", cartSession.Attach(cartHandler.SetNote()))
	routerMux.HandleFunc("POST /api/v1/cart/coupon", cartSession.Attach(cartHandler.ApplyCoupon()))
	routerMux.HandleFunc("DELETE /api/v1/cart/coupon", cartSession.Attach(cartHandler.RemoveCoupon()))
	routerMux.HandleFunc("POST /api/v1/checkout", cartSession.Attach(cartHandler.Checkout()))

	// session
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/logout", userHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/users/profile", userHandler.Profile())

	// admin
	routerMux.HandleFunc("GET /api/v1/admin/dashboard", authMiddleware.RequireAdmin(adminHandler.Dashboard()))
	routerMux.HandleFunc("POST /api/v1/admin/coupons", authMiddleware.RequireAdmin(adminHandler.CreateCoupon()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/categories/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteCategory()))
	routerMux.HandleFunc("DELETE /api/v1/admin/users/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteUser()))
	routerMux.HandleFunc("DELETE /api/v1/admin/orders/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteOrder()))
	routerMux.HandleFunc("DELETE /api/v1/admin/coupons/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteCoupon()))

	// operational endpoints
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Credentials(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}

func setupTracing(cfg *config.Config) (func(), error) {

	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("ecommerce-frontend"),
		)),
	)

	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Tracer provider shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}, nil
}
