// Package app wires the table store and services shared by the entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/common/uuid"
	"github.com/SamSam-01/Gamebrary/internal/config"
	"github.com/SamSam-01/Gamebrary/internal/database"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Services holds everything the surfaces need
type Services struct {
	Store     table.Store
	Transfer  transfer.Service
	Catalog   catalog.Service
	Session   session.Service
	Community community.Service
	Messaging messaging.Service

	closers []func()
}

// Close releases the store's connections
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Build opens the configured store and constructs the services on top of it
func Build(ctx context.Context, cfg *config.Config) (*Services, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	svcs := &Services{}
	clk := clock.New()

	store, err := openStore(ctx, cfg, clk, svcs)
	if err != nil {
		svcs.Close()
		return nil, err
	}
	svcs.Store = store

	transferSvc, err := transfer.New(&transfer.Config{
		Store:       store,
		Concurrency: cfg.Import.Concurrency,
	})
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create transfer service: %w", err)
	}
	svcs.Transfer = transferSvc

	catalogSvc, err := catalog.New(&catalog.Config{
		Store:    store,
		Importer: transferSvc,
		Clock:    clk,
	})
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}
	svcs.Catalog = catalogSvc

	sessionSvc, err := session.New(&session.Config{
		Store: store,
		Clock: clk,
	})
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	svcs.Session = sessionSvc

	communitySvc, err := community.New(&community.Config{
		Store: store,
		Clock: clk,
	})
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create community service: %w", err)
	}
	svcs.Community = communitySvc

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		svcs.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}
	svcs.Messaging = messagingSvc

	return svcs, nil
}

func openStore(ctx context.Context, cfg *config.Config, clk clock.Clock, svcs *Services) (table.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		svcs.closers = append(svcs.closers, func() { redisClient.Close() })

		log.Printf("Using Redis store at %s", cfg.Redis.Addr)
		return table.NewRedis(&table.RedisConfig{
			RedisClient:   redisClient,
			Clock:         clk,
			UUIDGenerator: uuid.New(),
		})

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres pool: %w", err)
		}
		svcs.closers = append(svcs.closers, pool.Close)

		if cfg.Store.RunMigrations {
			log.Println("Running database migrations")
			if err := database.Migrate(ctx, pool); err != nil {
				return nil, err
			}
		}

		log.Println("Using Postgres store")
		return table.NewPostgres(&table.PostgresConfig{Pool: pool})
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
