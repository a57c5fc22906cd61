package config

import (
	"os"
	"strconv"
)

// Config holds every runtime parameter of the application. All values come
// from environment variables with local-development defaults.
type Config struct {
	Port      string
	Database  DatabaseConfig
	RabbitMQ  RabbitMQConfig
	Redis     RedisConfig
	Payment   PaymentConfig
	SMTP      SMTPConfig
	Analytics AnalyticsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PaymentConfig describes the external checkout provider and the redirect
// targets the frontend expects once a checkout session finishes.
type PaymentConfig struct {
	SecretKey    string
	CheckoutURL  string
	AdminBaseURL string
	LandingURL   string
	AdminUserID  int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type AnalyticsConfig struct {
	BaseURL string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Database: getEnv("DB_DATABASE", "lolos-place"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", "/"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Payment: PaymentConfig{
			SecretKey:    getEnv("PAYMONGO_SECRET_KEY", ""),
			CheckoutURL:  getEnv("PAYMONGO_CHECKOUT_URL", "https://api.paymongo.com/v1/checkout_sessions"),
			AdminBaseURL: getEnv("FRONTEND_ADMIN_URL", "https://lolos-place-frontend.onrender.com/admin"),
			LandingURL:   getEnv("FRONTEND_LANDING_URL", "https://lolos-place-frontend.onrender.com"),
			AdminUserID:  getEnvInt("ADMIN_ID", 14),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("EMAIL_PORT", 587),
			User:     getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			From:     getEnv("EMAIL_FROM", ""),
		},
		Analytics: AnalyticsConfig{
			BaseURL: getEnv("ANALYTICS_URL", "https://lolos-place-backend-1.onrender.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
