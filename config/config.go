package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDatabase = "skill_summarizer"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// MongoDB Configuration
	MongoURI                   string
	MongoDatabase              string
	MongoConnectTimeoutSeconds int
	// HTTP Server Configuration
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored when no .env file exists.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Trailing slash would never match an Origin header
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// MongoDB Configuration
		MongoURI:                   getEnv("MONGO_DETAILS", DefaultMongoURI),
		MongoDatabase:              getEnv("MONGO_DATABASE", DefaultMongoDatabase),
		MongoConnectTimeoutSeconds: getEnvInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10),
		// HTTP Server Configuration
		ReadTimeoutSeconds:  getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15),
		WriteTimeoutSeconds: getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 15),
	}

	if cfg.MongoURI == DefaultMongoURI {
		log.Println("WARNING: MONGO_DETAILS not set. Using local MongoDB instance at " + DefaultMongoURI)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
