package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// Table configuration
	GamesTable     string
	ReviewsTable   string
	WatchlistTable string
	UsersTable     string

	// Secondary indexes on game_id for the recomputation and cascade paths
	ReviewsByGameIndex   string
	WatchlistByGameIndex string

	// Eventing
	EventBusName string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool

	// Rate limiting
	IPRequestsPerMinute   int
	UserRequestsPerMinute int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "eu-central-1"),

		GamesTable:     getEnv("GAMES_TABLE", "Games"),
		ReviewsTable:   getEnv("REVIEWS_TABLE", "Reviews"),
		WatchlistTable: getEnv("WATCHLIST_TABLE", "Watchlist"),
		UsersTable:     getEnv("USERS_TABLE", "Users"),

		ReviewsByGameIndex:   getEnv("REVIEWS_GAME_INDEX", "game_id-index"),
		WatchlistByGameIndex: getEnv("WATCHLIST_GAME_INDEX", "game_id-index"),

		EventBusName: getEnv("EVENT_BUS_NAME", "gamewatch-events"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "gamewatch-backend"),

		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		IPRequestsPerMinute:   getEnvInt("IP_REQUESTS_PER_MINUTE", 100),
		UserRequestsPerMinute: getEnvInt("USER_REQUESTS_PER_MINUTE", 200),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.GamesTable == "" || c.ReviewsTable == "" || c.WatchlistTable == "" || c.UsersTable == "" {
			return fmt.Errorf("all table names are required in production")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
