package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port           string
	PublicBasePath string

	// Storage configuration
	DataDir        string
	MaxUploadBytes int64
	StoreType      string // json, sql

	// Database configuration (StoreType sql)
	DBType            string // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Lock configuration
	LockBackend   string // local, redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LockTTLMillis int

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Notification configuration
	SNSTopicARN string
	AWSRegion   string
}

// Load loads configuration from environment variables, after applying an optional .env file
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		PublicBasePath:    strings.TrimRight(getEnv("PUBLIC_BASE_PATH", "/api"), "/"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		MaxUploadBytes:    getEnvAsInt64("MAX_UPLOAD_BYTES", 20<<20),
		StoreType:         getEnv("STORE_TYPE", "json"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		LockBackend:       getEnv("LOCK_BACKEND", "local"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		LockTTLMillis:     getEnvAsInt("LOCK_TTL_MS", 10000),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		SNSTopicARN:       getEnv("SNS_TOPIC_ARN", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and allowed values
func (c *Config) Validate() error {
	switch c.StoreType {
	case "json":
	case "sql":
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required when STORE_TYPE=sql")
		}
	default:
		return fmt.Errorf("STORE_TYPE must be json or sql, got %q", c.StoreType)
	}

	switch c.LockBackend {
	case "local":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when LOCK_BACKEND=redis")
		}
	default:
		return fmt.Errorf("LOCK_BACKEND must be local or redis, got %q", c.LockBackend)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

// FilesDir is the root of the binary document store
func (c *Config) FilesDir() string {
	return filepath.Join(c.DataDir, "files")
}

// loadEnvFile applies ENV_FILE, or ./.env when present. Variables already set win.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 gets an environment variable as an int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
