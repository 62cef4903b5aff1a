package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "emart"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv     = "EMART_APP_ENV"
	EnvAppPort    = "EMART_APP_PORT"
	EnvStorageDSN = "EMART_STORAGE_DSN"
	EnvRedisURL   = "EMART_REDIS_URL"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Store   StoreConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EMART_APP_ENV" required:"true"`
	Port         string `envconfig:"EMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"EMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EMART_LOG_WARN_STACK" default:"false"`
}

// IsDev loosens dev-only conveniences such as the CORS origin policy.
func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// StorageConfig selects the key-value snapshot backend.
type StorageConfig struct {
	Driver      string `envconfig:"EMART_STORAGE_DRIVER" default:"sqlite"`
	DSN         string `envconfig:"EMART_STORAGE_DSN" default:"emart.db"`
	SeedOnEmpty bool   `envconfig:"EMART_STORAGE_SEED_ON_EMPTY" default:"true"`
}

func (s *StorageConfig) validate() error {
	driver := strings.TrimSpace(strings.ToLower(s.Driver))
	switch driver {
	case "sqlite", "redis", "memory":
		s.Driver = driver
		return nil
	}
	return fmt.Errorf("unsupported storage driver %q", s.Driver)
}

type RedisConfig struct {
	URL      string `envconfig:"EMART_REDIS_URL"`
	Address  string `envconfig:"EMART_REDIS_ADDR"`
	Password string `envconfig:"EMART_REDIS_PASSWORD"`
	DB       int    `envconfig:"EMART_REDIS_DB" default:"0"`
}

// StoreConfig carries fallbacks applied when no settings snapshot exists yet.
type StoreConfig struct {
	Name           string `envconfig:"EMART_STORE_NAME"`
	WhatsAppNumber string `envconfig:"EMART_STORE_WHATSAPP_NUMBER"`
	Currency       string `envconfig:"EMART_STORE_CURRENCY"`
}
