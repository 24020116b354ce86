package infra

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Config is read from the environment once at startup and handed to
// constructors; nothing reads env vars after boot.
type Config struct {
	Port        string
	PostgresURL string

	JWTSecret string
	JWTTTL    time.Duration

	RegistryAddress string
	ServiceName     string
	ServiceID       string
	ServiceAddress  string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:            envOrDefault("PORT", "3000"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTTTL:          defaultTokenTTL,
		RegistryAddress: os.Getenv("REGISTRY_ADDRESS"),
		ServiceName:     envOrDefault("SERVICE_NAME", "user-service"),
		ServiceAddress:  envOrDefault("SERVICE_ADDRESS", "localhost"),
	}

	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid JWT_TTL %q: %v", raw, err)
		}
		cfg.JWTTTL = ttl
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	cfg.ServiceID = cfg.ServiceName + "-" + uuid.New().String()

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
