package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// BackendPostgres stores records in Postgres
	BackendPostgres = "postgres"

	// BackendRedis stores records in Redis
	BackendRedis = "redis"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig
	Redis   RedisConfig
	HTTP    HTTPConfig
	Discord DiscordConfig
	Import  ImportConfig
}

// StoreConfig selects and locates the table store
type StoreConfig struct {
	Backend       string
	DatabaseURL   string
	RunMigrations bool
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	Addr string
}

// DiscordConfig holds bot settings
type DiscordConfig struct {
	Token         string
	ApplicationID string
	GuildID       string
}

// ImportConfig holds bulk import settings
type ImportConfig struct {
	Concurrency int
}

// Load reads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return &Config{
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", BackendPostgres),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			RunMigrations: getBoolEnv("RUN_MIGRATIONS", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Discord: DiscordConfig{
			Token:         getEnv("DISCORD_TOKEN", ""),
			ApplicationID: getEnv("APPLICATION_ID", ""),
			GuildID:       getEnv("GUILD_ID", ""),
		},
		Import: ImportConfig{
			Concurrency: getIntEnv("IMPORT_CONCURRENCY", 1),
		},
	}, nil
}

// Validate checks the settings shared by every entry point
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres backend"))
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be 'postgres' or 'redis', got '%s'", c.Store.Backend))
	}

	if c.Import.Concurrency < 1 {
		errs = append(errs, errors.New("IMPORT_CONCURRENCY must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateDiscord checks the settings the bot needs
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
