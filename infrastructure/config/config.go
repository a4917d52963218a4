// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage driver and identity provider selectors.
const (
	StorageBolt     = "bolt"
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	AuthLocal    = "local"
	AuthSupabase = "supabase"

	PasswordStatic = "static"
	PasswordBcrypt = "bcrypt"
)

// Config holds all application configuration.
type Config struct {
	// Server
	ServerAddress string
	Environment   string

	// Durable storage
	StorageDriver string
	BoltPath      string
	AWSRegion     string
	DynamoDBTable string

	// Identity provider
	AuthProvider string
	SupabaseURL  string
	SupabaseKey  string

	// Mock-mode behavior
	MockLatency    time.Duration
	PasswordScheme string
	SharedPassword string

	// Session tokens
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Logging and features
	LogLevel      string
	EnableCORS    bool
	EnableMetrics bool
}

// LoadConfig reads configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageBolt),
		BoltPath:      getEnv("BOLT_PATH", "inkwell.db"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("DYNAMODB_TABLE", "inkwell"),

		AuthProvider: getEnv("AUTH_PROVIDER", AuthLocal),
		SupabaseURL:  getEnv("SUPABASE_URL", ""),
		SupabaseKey:  getEnv("SUPABASE_ANON_KEY", ""),

		MockLatency:    time.Duration(getEnvInt("MOCK_LATENCY_MS", 1000)) * time.Millisecond,
		PasswordScheme: getEnv("PASSWORD_SCHEME", PasswordStatic),
		SharedPassword: getEnv("SHARED_PASSWORD", "password"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "inkwell"),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected drivers have what they need.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageBolt, StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.AuthProvider {
	case AuthLocal, AuthSupabase:
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider)
	}
	switch c.PasswordScheme {
	case PasswordStatic, PasswordBcrypt:
	default:
		return fmt.Errorf("unknown PASSWORD_SCHEME %q", c.PasswordScheme)
	}

	if c.AuthProvider == AuthSupabase && (c.SupabaseURL == "" || c.SupabaseKey == "") {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required with AUTH_PROVIDER=supabase")
	}
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.PasswordScheme == PasswordStatic && c.AuthProvider == AuthLocal {
			return fmt.Errorf("PASSWORD_SCHEME=static is not allowed in production")
		}
	}
	return nil
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
