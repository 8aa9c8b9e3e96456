package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	stripeKey := os.Getenv("STRIPE_API_KEY")
	shippoToken := os.Getenv("SHIPPO_API_TOKEN")
	jwtSecret := os.Getenv("JWT_SECRET")
	mediaEndpoint := os.Getenv("MEDIA_ENDPOINT")
	mediaAPIKey := os.Getenv("MEDIA_API_KEY")
	mediaBucket := os.Getenv("MEDIA_BUCKET")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if stripeKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY environment variable is required")
	}

	if shippoToken == "" {
		return nil, fmt.Errorf("SHIPPO_API_TOKEN environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if mediaBucket == "" {
		mediaBucket = "artwork"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:    databaseURL,
		RedisURL:       redisURL,
		StripeAPIKey:   stripeKey,
		ShippoAPIToken: shippoToken,
		JWTSecret:      jwtSecret,
		MediaEndpoint:  mediaEndpoint,
		MediaAPIKey:    mediaAPIKey,
		MediaBucket:    mediaBucket,
		Environment:    environment,
	}, nil
}
