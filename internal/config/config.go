package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP  HTTPConfig
	Mongo MongoConfig
	NATS  NATSConfig
	Redis RedisConfig
}

type HTTPConfig struct {
	Port string
}

type MongoConfig struct {
	URI string
	DB  string
}

// NATSConfig and RedisConfig are optional integrations; an empty URL
// disables the corresponding component.
type NATSConfig struct {
	URL string
}

type RedisConfig struct {
	URL     string
	MenuTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	menuTTL, err := time.ParseDuration(getEnv("MENU_CACHE_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Port: getEnv("PORT", "8000"),
		},
		Mongo: MongoConfig{
			URI: getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			DB:  getEnv("DATABASE_NAME", "fooddelivery"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", ""),
			MenuTTL: menuTTL,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Mongo.DB == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
