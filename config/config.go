package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"healthtrack/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Location    *time.Location

	AIProvider       string
	GeminiAPIKey     string
	GeminiModel      string
	HuggingFaceToken string
	HuggingFaceModel string

	AWSRegion          string
	S3Bucket           string
	S3Region           string
	CloudFrontURL      string
	SESEmail           string
	SNSFCMArn          string
	RekognitionEnabled bool
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found, reading environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can avoid the real environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:             withDefault(getenv("PORT"), "8080"),
		DatabaseURL:      getenv("DATABASE_URL"),
		JWTSecret:        getenv("JWT_SECRET"),
		AIProvider:       withDefault(getenv("AI_PROVIDER"), "gemini"),
		GeminiAPIKey:     getenv("GEMINI_API_KEY"),
		GeminiModel:      withDefault(getenv("GEMINI_MODEL"), "gemini-2.0-flash"),
		HuggingFaceToken: getenv("HUGGINGFACE_TOKEN"),
		HuggingFaceModel: withDefault(getenv("HUGGINGFACE_MODEL"), "mistralai/Mistral-7B-Instruct-v0.3"),
		AWSRegion:        getenv("AWS_REGION"),
		S3Bucket:         getenv("S3_BUCKET"),
		S3Region:         getenv("S3_REGION"),
		CloudFrontURL:    getenv("CLOUDFRONT_URL"),
		SESEmail:         getenv("SES_EMAIL"),
		SNSFCMArn:        getenv("SNS_FCM_ARN"),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = cfg.AWSRegion
	}

	if cfg.DatabaseURL == "" && getenv("DB_HOST") != "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST"),
			getenv("DB_USER"),
			getenv("DB_PASSWORD"),
			getenv("DB_NAME"),
			withDefault(getenv("DB_PORT"), "5432"),
		)
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL (or DB_HOST/DB_USER/DB_PASSWORD/DB_NAME) not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	cfg.Location = time.UTC
	if tz := getenv("APP_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if v := getenv("REKOGNITION_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REKOGNITION_ENABLED %q: %w", v, err)
		}
		cfg.RekognitionEnabled = enabled
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
