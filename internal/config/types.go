package config

type Config struct {
	DatabaseURL    string
	RedisURL       string
	StripeAPIKey   string
	ShippoAPIToken string
	JWTSecret      string
	MediaEndpoint  string
	MediaAPIKey    string
	MediaBucket    string
	Environment    string
}
