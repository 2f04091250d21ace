package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// CORS configuration
	CORS CORSConfig

	// AWS configuration (RDS IAM auth, report export)
	AWS AWSConfig

	// Booking report export configuration
	Reports ReportsConfig

	// Login throttling and audit retention
	Security SecurityConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string
	Environment    string // development, staging, production
	LogLevel       string // debug, info, warn, error
	RequestTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver             string // postgres, pgx or mysql
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration

	// RDS IAM authentication. When enabled the password is a short-lived token
	// and URL is ignored.
	IAMAuth bool
	Host    string
	Port    int
	User    string
	Name    string
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// AWSConfig holds AWS SDK settings
type AWSConfig struct {
	Region  string
	Profile string // shared config profile, mostly for local development
}

// ReportsConfig holds S3 settings for exported booking reports
type ReportsConfig struct {
	Bucket string
	Prefix string
}

// SecurityConfig holds login throttling and audit log housekeeping settings
type SecurityConfig struct {
	MaxLoginAttemptsPerEmail int
	MaxLoginAttemptsPerIP    int
	LoginWindow              time.Duration
	AuditRetention           time.Duration
	CleanupSchedule          string // cron expression with seconds field
}

var supportedDrivers = map[string]bool{
	"postgres": true,
	"pgx":      true,
	"mysql":    true,
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Database: DatabaseConfig{
			Driver:             getEnv("DATABASE_DRIVER", "postgres"),
			URL:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetime:    time.Duration(getEnvAsInt("DATABASE_CONN_MAX_LIFETIME", 300)) * time.Second,
			IAMAuth:            getEnvAsBool("DATABASE_IAM_AUTH", false),
			Host:               getEnv("DATABASE_HOST", ""),
			Port:               getEnvAsInt("DATABASE_PORT", 5432),
			User:               getEnv("DATABASE_USER", ""),
			Name:               getEnv("DATABASE_NAME", ""),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", ""),
			AccessTokenExpiry: time.Duration(getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY", 3600)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization", "X-Request-ID"}),
		},
		AWS: AWSConfig{
			Region:  getEnv("AWS_REGION", "eu-central-1"),
			Profile: getEnv("AWS_PROFILE", ""),
		},
		Reports: ReportsConfig{
			Bucket: getEnv("REPORTS_BUCKET", ""),
			Prefix: getEnv("REPORTS_PREFIX", "reports"),
		},
		Security: SecurityConfig{
			MaxLoginAttemptsPerEmail: getEnvAsInt("LOGIN_MAX_ATTEMPTS_PER_EMAIL", 5),
			MaxLoginAttemptsPerIP:    getEnvAsInt("LOGIN_MAX_ATTEMPTS_PER_IP", 20),
			LoginWindow:              time.Duration(getEnvAsInt("LOGIN_WINDOW_MINUTES", 15)) * time.Minute,
			AuditRetention:           time.Duration(getEnvAsInt("AUDIT_RETENTION_DAYS", 90)) * 24 * time.Hour,
			CleanupSchedule:          getEnv("CLEANUP_SCHEDULE", "0 30 3 * * *"),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !supportedDrivers[c.Database.Driver] {
		return fmt.Errorf("invalid DATABASE_DRIVER: %s (must be 'postgres', 'pgx' or 'mysql')", c.Database.Driver)
	}

	if c.Database.IAMAuth {
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("DATABASE_HOST, DATABASE_USER and DATABASE_NAME are required when DATABASE_IAM_AUTH is enabled")
		}
		if c.AWS.Region == "" {
			return fmt.Errorf("AWS_REGION is required when DATABASE_IAM_AUTH is enabled")
		}
	} else if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Security.MaxLoginAttemptsPerEmail <= 0 || c.Security.MaxLoginAttemptsPerIP <= 0 {
		return fmt.Errorf("LOGIN_MAX_ATTEMPTS_PER_EMAIL and LOGIN_MAX_ATTEMPTS_PER_IP must be positive")
	}

	return nil
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
