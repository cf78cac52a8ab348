package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	Warehouse WarehouseConfig `json:"warehouse"`
	JWT       JWTConfig       `json:"jwt"`
	Cache     CacheConfig     `json:"cache"`
	App       AppConfig       `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	Origin    string `json:"origin"`
	Debug     bool   `json:"debug"`
}

// WarehouseConfig holds the analytical warehouse connection configuration.
// The warehouse is reached over the Postgres wire protocol; Role is the
// service-account role the connection runs under, not a caller role.
type WarehouseConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	Schema          string        `json:"schema"`
	Role            string        `json:"role"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
	ConnectTimeout  int           `json:"connectTimeout"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret    string        `json:"secret"`
	ExpiresIn time.Duration `json:"expiresIn"`
}

// CacheConfig holds the analytics response cache configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Backend string        `json:"backend"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"poolSize"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults (if applicable)
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() will read the .env file and load its values into the
	// environment for this process *only if they are not already set*.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		// Not an error: fall back to the process environment.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/api/v1"),
			Origin:    getEnvOrDefault("ORIGIN", "*"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Warehouse: WarehouseConfig{
			Host:            getEnvOrDefault("WAREHOUSE_HOST", "localhost"),
			Port:            getEnvAsInt("WAREHOUSE_PORT", 5432),
			Username:        getEnvOrDefault("WAREHOUSE_USER", ""),
			Password:        getEnvOrDefault("WAREHOUSE_PASSWORD", ""),
			Database:        getEnvOrDefault("WAREHOUSE_DATABASE", "LTC_INSURANCE"),
			Schema:          getEnvOrDefault("WAREHOUSE_SCHEMA", "ANALYTICS"),
			Role:            getEnvOrDefault("WAREHOUSE_ROLE", "API_SERVICE_ROLE"),
			SSLMode:         getEnvOrDefault("WAREHOUSE_SSL_MODE", "require"),
			MaxOpenConns:    getEnvAsInt("WAREHOUSE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("WAREHOUSE_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: time.Duration(getEnvAsInt("WAREHOUSE_CONN_MAX_LIFETIME", 300)) * time.Second,
			ConnectTimeout:  getEnvAsInt("WAREHOUSE_CONNECT_TIMEOUT", 10),
		},
		JWT: JWTConfig{
			Secret:    getEnvOrDefault("JWT_SECRET_KEY", ""),
			ExpiresIn: getEnvAsDuration("JWT_EXPIRES_IN", time.Hour),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", false),
			Backend: getEnvOrDefault("CACHE_BACKEND", "memory"),
			TTL:     getEnvAsDuration("CACHE_TTL", 5*time.Minute),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
				PoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
			},
		},
		App: AppConfig{
			Name:        getEnvOrDefault("APP_NAME", "ltc-data-api"),
			Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Warehouse.Username == "" {
		return fmt.Errorf("WAREHOUSE_USER is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
