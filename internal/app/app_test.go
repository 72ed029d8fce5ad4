package app

import (
	"context"
	"testing"

	"github.com/SamSam-01/Gamebrary/internal/config"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Store:  config.StoreConfig{Backend: config.BackendRedis},
		Redis:  config.RedisConfig{Addr: mr.Addr()},
		Import: config.ImportConfig{Concurrency: 2},
	}

	svcs, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer svcs.Close()

	result := svcs.Transfer.ImportFromJSON(context.Background(), &transfer.ImportFromJSONInput{
		Data:   `{"title":"Azul"}`,
		UserID: "user-1",
	})
	require.True(t, result.Success, result.Error)

	out, ok := svcs.Transfer.ExportGame(context.Background(), &transfer.ExportGameInput{GameID: result.GameID})
	require.True(t, ok)
	assert.Equal(t, "Azul", out.Title)
}

func TestBuildUnknownBackend(t *testing.T) {
	_, err := Build(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "sqlite"}})
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestBuildNilConfig(t *testing.T) {
	_, err := Build(context.Background(), nil)
	assert.Error(t, err)
}
