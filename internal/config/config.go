package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the process configuration, resolved from the environment.
type Config struct {
	Port       string
	BcryptCost int
	LogLevel   log.Level
}

// Load reads an optional .env file and resolves configuration with defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:       getEnv("PORT", "3002"),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   log.InfoLevel,
	}

	if level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		cfg.LogLevel = level
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
