package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL          string
	DBName            string
	AppPort           string
	AppEnv            string
	JWTSecret         string
	TokenTTL          time.Duration
	RazorpayKeyID     string
	RazorpayKeySecret string
	CORSOrigins       string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURL:          os.Getenv("MONGO_URL"),
		DBName:            getEnv("DB_NAME", "restaurant_db"),
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "development"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          parseTTL(os.Getenv("TOKEN_TTL")),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
	}

	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	return cfg
}

func (c *Config) validate() error {
	if c.MongoURL == "" {
		return errors.New("MONGO_URL must be set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.AppEnv == "production" && strings.Contains(c.MongoURL, "localhost") {
		return errors.New("MONGO_URL must not point at localhost in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid TOKEN_TTL %q, falling back to 1h", raw)
		return time.Hour
	}
	return d
}
