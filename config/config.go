package config

import (
	"os"
)

type Config struct {
	ServerPort    string
	Environment   string
	SessionSecret string
	AdminUsername string
	AdminPassword string
	Debug         bool
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("PORT", "5000"),
		Environment:   getEnv("ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
		AdminUsername: getEnv("ADMIN_USERNAME", "sai_admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		Debug:         getEnv("DEBUG", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
