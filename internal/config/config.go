package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Backend is the remote commerce API every resource call is proxied to.
type Backend struct {
	BaseURL     string        `yaml:"BACKEND_BASE_URL" env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout     time.Duration `yaml:"BACKEND_TIMEOUT" env:"BACKEND_TIMEOUT" env-default:"10s"`
	CheckoutURL string        `yaml:"CHECKOUT_URL" env:"CHECKOUT_URL" env-default:"/checkout"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CartConfig struct {
	SessionTTL   time.Duration `yaml:"CART_SESSION_TTL" env:"CART_SESSION_TTL" env-default:"720h"`
	CookieName   string        `yaml:"CART_COOKIE_NAME" env:"CART_COOKIE_NAME" env-default:"cart_session"`
	CookieSecure bool          `yaml:"CART_COOKIE_SECURE" env:"CART_COOKIE_SECURE" env-default:"true"`
}

type Tracing struct {
	Enabled  bool   `yaml:"OTEL_ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint string `yaml:"OTEL_EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	Backend      Backend      `yaml:"backend"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cart         CartConfig   `yaml:"cart"`
	Tracing      Tracing      `yaml:"tracing"`
}

func MustLoad() *Config {

	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {

		// env-only deployment, no yaml file
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

	} else {

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("can not read config file: %s", err.Error())
		}

	}

	// The base URL must never end with a slash, otherwise joined image and API
	// paths come out with a double slash.
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
