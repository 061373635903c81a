package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_DETAILS", DefaultMongoURI)
	t.Setenv("MONGO_DATABASE", DefaultMongoDatabase)
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "skill_summarizer", cfg.MongoDatabase)
	assert.Equal(t, 10, cfg.MongoConnectTimeoutSeconds, "invalid ints fall back to the default")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGO_DETAILS", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "skills_test")
	t.Setenv("FRONTEND_URL", "https://app.example.com/")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_READ_TIMEOUT_SECONDS", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "skills_test", cfg.MongoDatabase)
	assert.Equal(t, "https://app.example.com", cfg.FrontendURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.ReadTimeoutSeconds)
}
