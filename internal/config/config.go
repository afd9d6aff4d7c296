package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DemoUser is a static credential record. The auth layer receives these at
// construction instead of reading a process-wide table.
type DemoUser struct {
	Password string
	Name     string
	Role     string
}

type AppConfig struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	DemoUsers   map[string]DemoUser
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present

	port := getEnv("PORT", "8080")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("missing required env: DATABASE_URL")
	}
	secret := getEnv("JWT_SECRET", "prothink-secret-key-change-in-production")
	ttlHours := getEnvInt("TOKEN_TTL_HOURS", 24)

	return AppConfig{
		Port:        port,
		DatabaseURL: dbURL,
		JWTSecret:   secret,
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
		DemoUsers:   DefaultDemoUsers(),
	}
}

// DefaultDemoUsers returns the documented demo credential table.
func DefaultDemoUsers() map[string]DemoUser {
	return map[string]DemoUser{
		"admin@prothink.com": {
			Password: "password123",
			Name:     "Admin User",
			Role:     "Administrator",
		},
		"manager@prothink.com": {
			Password: "manager123",
			Name:     "Manager User",
			Role:     "Manager",
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
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
