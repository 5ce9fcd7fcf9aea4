package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server       ServerConfig
	Gemini       GeminiConfig
	Expression   ExpressionConfig
	Storage      StorageConfig
	Collaborator CollaboratorConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
}

type ExpressionConfig struct {
	ServiceURL string
}

type StorageConfig struct {
	SessionsPath string
	UploadPath   string
	MaxFileSize  int64
}

type CollaboratorConfig struct {
	Timeout          time.Duration
	RetryMaxAttempts int
	QuestionCount    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Expression: ExpressionConfig{
			ServiceURL: getEnv("EXPRESSION_SERVICE_URL", "http://localhost:8500"),
		},
		Storage: StorageConfig{
			SessionsPath: getEnv("SESSIONS_PATH", "./sessions"),
			UploadPath:   getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 52428800),
		},
		Collaborator: CollaboratorConfig{
			Timeout:          getEnvAsDuration("COLLABORATOR_TIMEOUT", "60s"),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			QuestionCount:    getEnvAsInt("QUESTION_COUNT", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
