package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL       string
	Environment       string
	Schedule          string
	ReportDir         string
	ReportPDF         bool
	DataEncryptionKey string
}

func Load() Config {
	return Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Environment:       getEnv("APP_ENV", "development"),
		Schedule:          getEnv("RETENTION_SCHEDULE", ""),
		ReportDir:         getEnv("REPORT_DIR", "storage/retention"),
		ReportPDF:         getEnvBool("REPORT_PDF", false),
		DataEncryptionKey: getEnv("DATA_ENCRYPTION_KEY", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.ReportDir) == "" {
		return fmt.Errorf("REPORT_DIR must not be empty")
	}
	if c.Environment == "production" && strings.TrimSpace(c.DataEncryptionKey) == "" {
		return fmt.Errorf("DATA_ENCRYPTION_KEY must be set in production so run reports are encrypted at rest")
	}
	return nil
}
