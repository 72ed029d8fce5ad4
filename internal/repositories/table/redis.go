package table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/common/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	rowKeyPrefix   = "row:"
	indexKeyPrefix = "index:"
	seqKeyPrefix   = "seq:"
)

// RedisConfig holds configuration for the Redis table store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps default timestamp columns
	Clock clock.Clock

	// UUIDGenerator assigns ids to new rows
	UUIDGenerator uuid.UUID
}

// redisStore implements the Store interface using Redis. Each row is a JSON
// value under row:<table>:<id>; index:<table> is a sorted set of ids scored
// by insertion sequence so scans return rows in insertion order.
type redisStore struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed table store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store := &redisStore{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		uuid:   cfg.UUIDGenerator,
	}
	if store.clock == nil {
		store.clock = clock.New()
	}
	if store.uuid == nil {
		store.uuid = uuid.New()
	}
	return store, nil
}

func rowKey(table Name, id string) string {
	return fmt.Sprintf("%s%s:%s", rowKeyPrefix, table, id)
}

func indexKey(table Name) string {
	return fmt.Sprintf("%s%s", indexKeyPrefix, table)
}

func seqKey(table Name) string {
	return fmt.Sprintf("%s%s", seqKeyPrefix, table)
}

// Insert persists a row to Redis
func (r *redisStore) Insert(ctx context.Context, input *InsertInput) (Row, error) {
	if input == nil || input.Row == nil {
		return nil, errors.New("input and row cannot be nil")
	}
	if err := validateColumns(input.Table, rowColumns(input.Row)...); err != nil {
		return nil, err
	}

	// Apply column defaults, then the caller's values
	tbl := schema[input.Table]
	row := tbl.defaults(Timestamp(r.clock.Now()))
	for column, value := range input.Row {
		row[column] = value
	}
	if id, _ := row["id"].(string); id == "" {
		if !tbl.generatedID {
			return nil, fmt.Errorf("id is required for %s", input.Table)
		}
		row["id"] = r.uuid.NewUUID()
	}

	stored, err := Encode(row)
	if err != nil {
		return nil, err
	}
	id := stored.String("id")

	rowJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row: %w", err)
	}

	// Reserve the id first so a concurrent insert of the same id loses
	key := rowKey(input.Table, id)
	created, err := r.client.SetNX(ctx, key, rowJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", input.Table, err)
	}
	if !created {
		return nil, fmt.Errorf("%w: %s %s", ErrDuplicate, input.Table, id)
	}

	seq, err := r.client.Incr(ctx, seqKey(input.Table)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to sequence %s row: %w", input.Table, err)
	}
	if err := r.client.ZAdd(ctx, indexKey(input.Table), redis.Z{
		Score:  float64(seq),
		Member: id,
	}).Err(); err != nil {
		return nil, fmt.Errorf("failed to index %s row: %w", input.Table, err)
	}

	return stored, nil
}

// Select retrieves matching rows from Redis
func (r *redisStore) Select(ctx context.Context, query *Query) ([]Row, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}
	if err := validateColumns(query.Table, query.columns()...); err != nil {
		return nil, err
	}

	rows, err := r.scan(ctx, query.Table)
	if err != nil {
		return nil, err
	}

	matched := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matchesFilters(row, query.Filters) && matchesSubstring(row, query.Match) {
			matched = append(matched, row)
		}
	}

	sortRows(matched, query.OrderBy)

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// SelectOne retrieves exactly one matching row from Redis
func (r *redisStore) SelectOne(ctx context.Context, query *Query) (Row, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}
	limited := *query
	limited.Limit = 2

	rows, err := r.Select(ctx, &limited)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return rows[0], nil
	}
	return nil, ErrMultipleRows
}

// Update rewrites the patched columns of matching rows in Redis
func (r *redisStore) Update(ctx context.Context, input *UpdateInput) error {
	if input == nil || len(input.Patch) == 0 {
		return errors.New("input and patch cannot be empty")
	}
	if err := validateColumns(input.Table, append(filterColumns(input.Filters), rowColumns(input.Patch)...)...); err != nil {
		return err
	}

	rows, err := r.Select(ctx, &Query{Table: input.Table, Filters: input.Filters})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	patch, err := Encode(input.Patch)
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()
	for _, row := range rows {
		for column, value := range patch {
			row[column] = value
		}
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		pipe.Set(ctx, rowKey(input.Table, row.String("id")), rowJSON, 0)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update %s: %w", input.Table, err)
	}
	return nil
}

// Delete removes matching rows from Redis
func (r *redisStore) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateColumns(input.Table, filterColumns(input.Filters)...); err != nil {
		return err
	}

	rows, err := r.Select(ctx, &Query{Table: input.Table, Filters: input.Filters})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()
	for _, row := range rows {
		id := row.String("id")
		pipe.Del(ctx, rowKey(input.Table, id))
		pipe.ZRem(ctx, indexKey(input.Table), id)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", input.Table, err)
	}
	return nil
}

// scan loads every row of a table in insertion order
func (r *redisStore) scan(ctx context.Context, table Name) ([]Row, error) {
	ids, err := r.client.ZRange(ctx, indexKey(table), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	if len(ids) == 0 {
		return []Row{}, nil
	}

	// Get all rows in one round trip using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		commands[i] = pipe.Get(ctx, rowKey(table, id))
	}

	// Missing keys surface as redis.Nil on the individual commands
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}

	rows := make([]Row, 0, len(ids))
	for i, cmd := range commands {
		rowJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Row was deleted between listing the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get %s %s: %w", table, ids[i], err)
		}

		var row Row
		if err := json.Unmarshal([]byte(rowJSON), &row); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s %s: %w", table, ids[i], err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
