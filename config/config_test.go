package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL": "postgres://localhost/healthtrack",
		"JWT_SECRET":   "s3cret",
		"AWS_REGION":   "eu-west-1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
	assert.False(t, cfg.RekognitionEnabled)
}

func TestFromEnvComposesDSN(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DB_HOST":     "db",
		"DB_USER":     "app",
		"DB_PASSWORD": "pw",
		"DB_NAME":     "healthtrack",
		"JWT_SECRET":  "s3cret",
	}))
	require.NoError(t, err)
	assert.Equal(t, "host=db user=app password=pw dbname=healthtrack port=5432 sslmode=disable", cfg.DatabaseURL)
}

func TestFromEnvRequiresSecrets(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"JWT_SECRET": "x"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"DATABASE_URL": "postgres://x"}))
	assert.Error(t, err)
}

func TestFromEnvTimezone(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL":        "postgres://x",
		"JWT_SECRET":          "x",
		"APP_TIMEZONE":        "Europe/Berlin",
		"REKOGNITION_ENABLED": "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.True(t, cfg.RekognitionEnabled)

	_, err = FromEnv(envMap(map[string]string{
		"DATABASE_URL": "postgres://x",
		"JWT_SECRET":   "x",
		"APP_TIMEZONE": "Mars/Olympus",
	}))
	assert.Error(t, err)
}
