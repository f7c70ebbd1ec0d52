package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL   string
	MongoURL      string
	DBType        string
	Port          string
	JWTSecret     string
	AdminPassword string
	TokenTTL      time.Duration
}

// LoadConfig reads configuration from .env or system environment variables.
// The JWT signing secret is mandatory: the process must not serve with an
// empty key.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		MongoURL:      os.Getenv("MONGO_URL"),
		DBType:        os.Getenv("DB_TYPE"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	// Deployment convention, expected to be rotated after first start.
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}
	return cfg, nil
}
