package infrastructures

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	DATABASE_URL     string
	CONNECT_BASE_URL string
	STORAGE_BASE_URL string
	STORAGE_API_KEY  string
	STORAGE_BUCKET   string
	MAIL_BASE_URL    string
	MAIL_API_KEY     string
	MAIL_FROM        string
}

var Config *AppConfig

func LoadConfig() *AppConfig {
	godotenv.Load()

	Config = &AppConfig{
		DATABASE_URL:     os.Getenv("DATABASE_URL"),
		CONNECT_BASE_URL: os.Getenv("CONNECT_BASE_URL"),
		STORAGE_BASE_URL: os.Getenv("STORAGE_BASE_URL"),
		STORAGE_API_KEY:  os.Getenv("STORAGE_API_KEY"),
		STORAGE_BUCKET:   getEnv("STORAGE_BUCKET", "promotion"),
		MAIL_BASE_URL:    os.Getenv("MAIL_BASE_URL"),
		MAIL_API_KEY:     os.Getenv("MAIL_API_KEY"),
		MAIL_FROM:        getEnv("MAIL_FROM", "no-reply@stasiunku.id"),
	}

	return Config
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
