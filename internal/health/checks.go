package health

import (
	"time"

	"github.com/hellofresh/health-go/v5"
	healthHttp "github.com/hellofresh/health-go/v5/checks/http"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/paramatmakhadka/ecommerce-frontend/internal/config"
)

// NewHealthHandler reports on the two collaborators this service cannot work
// without: the cart store and the commerce backend.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "ecommerce-frontend",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
			health.Config{
				Name:      "backend",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check: healthHttp.New(healthHttp.Config{
					URL: cfg.Backend.BaseURL + "/api/categories",
				}),
			},
		),
	)
	if err != nil {
		return nil, err
	}

	return h, nil
}
