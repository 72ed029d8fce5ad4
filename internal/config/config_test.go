package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBaseConfig() *Config {
	return &Config{
		Store:  StoreConfig{Backend: BackendPostgres, DatabaseURL: "postgres://localhost/gamebrary"},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		HTTP:   HTTPConfig{Addr: ":8080"},
		Import: ImportConfig{Concurrency: 1},
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STORE_BACKEND", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB",
		"HTTP_ADDR", "IMPORT_CONCURRENCY", "RUN_MIGRATIONS", "DISCORD_TOKEN",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 1, cfg.Import.Concurrency)
	assert.False(t, cfg.Store.RunMigrations)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IMPORT_CONCURRENCY", "4")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("GUILD_ID", "guild-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 4, cfg.Import.Concurrency)
	assert.True(t, cfg.Store.RunMigrations)
	assert.Equal(t, "guild-1", cfg.Discord.GuildID)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("IMPORT_CONCURRENCY", "many")
	t.Setenv("RUN_MIGRATIONS", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Import.Concurrency)
	assert.False(t, cfg.Store.RunMigrations)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.Store.DatabaseURL = "" },
			wantErr: "DATABASE_URL",
		},
		{
			name:   "redis backend",
			mutate: func(c *Config) { c.Store = StoreConfig{Backend: BackendRedis} },
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Store.Backend = "sqlite" },
			wantErr: "STORE_BACKEND",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Import.Concurrency = 0 },
			wantErr: "IMPORT_CONCURRENCY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDiscord(t *testing.T) {
	cfg := validBaseConfig()
	assert.Error(t, cfg.ValidateDiscord())

	cfg.Discord.Token = "token"
	assert.NoError(t, cfg.ValidateDiscord())
}
