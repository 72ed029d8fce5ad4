package table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/common/identity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresConfig holds configuration for the Postgres table store
type PostgresConfig struct {
	// Pool is the shared connection pool
	Pool *pgxpool.Pool
}

// postgresStore implements the Store interface using Postgres. Values cross
// the wire as one jsonb document per statement and are typed server-side by
// jsonb_populate_record, so column types come from the table definition.
// Every statement runs in a transaction with app.user_id set from the
// caller's identity for row level security policies.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed table store
func NewPostgres(cfg *PostgresConfig) (*postgresStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("pool cannot be nil")
	}

	if err := cfg.Pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &postgresStore{pool: cfg.Pool}, nil
}

// Insert persists a row to Postgres
func (p *postgresStore) Insert(ctx context.Context, input *InsertInput) (Row, error) {
	if input == nil || len(input.Row) == 0 {
		return nil, errors.New("input and row cannot be empty")
	}
	sql, args, err := buildInsert(input.Table, input.Row)
	if err != nil {
		return nil, err
	}

	var rows []Row
	err = p.withTx(ctx, func(tx pgx.Tx) error {
		rows, err = queryRows(ctx, tx, sql, args...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", input.Table, translate(err))
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("failed to insert into %s: %d rows returned", input.Table, len(rows))
	}
	return rows[0], nil
}

// Select retrieves matching rows from Postgres
func (p *postgresStore) Select(ctx context.Context, query *Query) ([]Row, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}
	sql, args, err := buildSelect(query)
	if err != nil {
		return nil, err
	}

	var rows []Row
	err = p.withTx(ctx, func(tx pgx.Tx) error {
		rows, err = queryRows(ctx, tx, sql, args...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", query.Table, err)
	}
	return rows, nil
}

// SelectOne retrieves exactly one matching row from Postgres
func (p *postgresStore) SelectOne(ctx context.Context, query *Query) (Row, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}
	limited := *query
	limited.Limit = 2

	rows, err := p.Select(ctx, &limited)
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

// Update rewrites the patched columns of matching rows in Postgres
func (p *postgresStore) Update(ctx context.Context, input *UpdateInput) error {
	if input == nil || len(input.Patch) == 0 {
		return errors.New("input and patch cannot be empty")
	}
	sql, args, err := buildUpdate(input)
	if err != nil {
		return err
	}

	err = p.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", input.Table, translate(err))
	}
	return nil
}

// Delete removes matching rows from Postgres
func (p *postgresStore) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	sql, args, err := buildDelete(input)
	if err != nil {
		return err
	}

	err = p.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", input.Table, err)
	}
	return nil
}

func (p *postgresStore) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if userID, ok := identity.UserID(ctx); ok {
		if _, err := tx.Exec(ctx, "SELECT set_config('app.user_id', $1, true)", userID); err != nil {
			return fmt.Errorf("failed to set session identity: %w", err)
		}
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func queryRows(ctx context.Context, tx pgx.Tx, sql string, args ...any) ([]Row, error) {
	documents, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(documents, pgx.RowTo[[]byte])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(raw))
	for _, document := range raw {
		var row Row
		if err := json.Unmarshal(document, &row); err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

func quote(identifier string) string {
	return `"` + identifier + `"`
}

func sortedColumns(row Row) []string {
	columns := rowColumns(row)
	sort.Strings(columns)
	return columns
}

func document(row Row) (string, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return "", fmt.Errorf("failed to marshal row: %w", err)
	}
	return string(data), nil
}

// filterDocument splits filters into a jsonb document of values and a WHERE
// clause comparing t against the populated record f
func filterDocument(filters []Filter) (string, string, error) {
	values := Row{}
	conditions := make([]string, 0, len(filters))
	for _, f := range filters {
		if _, dup := values[f.Column]; dup {
			return "", "", fmt.Errorf("%w: %q filtered twice", ErrInvalidColumn, f.Column)
		}
		if f.Value == nil {
			conditions = append(conditions, fmt.Sprintf("t.%s IS NULL", quote(f.Column)))
			continue
		}
		values[f.Column] = f.Value
		conditions = append(conditions, fmt.Sprintf("t.%s = f.%s", quote(f.Column), quote(f.Column)))
	}
	doc, err := document(values)
	if err != nil {
		return "", "", err
	}
	if len(conditions) == 0 {
		return doc, "", nil
	}
	return doc, " WHERE " + strings.Join(conditions, " AND "), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildInsert(table Name, row Row) (string, []any, error) {
	columns := sortedColumns(row)
	if err := validateColumns(table, columns...); err != nil {
		return "", nil, err
	}
	doc, err := document(row)
	if err != nil {
		return "", nil, err
	}

	quoted := make([]string, len(columns))
	selected := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quote(column)
		selected[i] = "r." + quote(column)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s AS t (%s) SELECT %s FROM jsonb_populate_record(NULL::%s, $1::jsonb) AS r RETURNING to_jsonb(t)",
		quote(string(table)), strings.Join(quoted, ", "), strings.Join(selected, ", "), quote(string(table)),
	)
	return sql, []any{doc}, nil
}

func buildSelect(q *Query) (string, []any, error) {
	if err := validateColumns(q.Table, q.columns()...); err != nil {
		return "", nil, err
	}
	doc, where, err := filterDocument(q.Filters)
	if err != nil {
		return "", nil, err
	}
	args := []any{doc}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT to_jsonb(t) FROM %s AS t, jsonb_populate_record(NULL::%s, $1::jsonb) AS f",
		quote(string(q.Table)), quote(string(q.Table)))
	b.WriteString(where)

	if q.Match != nil {
		args = append(args, "%"+escapeLike(q.Match.Substring)+"%")
		if where == "" {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "t.%s ILIKE $%d", quote(q.Match.Column), len(args))
	}

	if len(q.OrderBy) > 0 {
		orders := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			direction := "ASC"
			if o.Descending {
				direction = "DESC"
			}
			orders[i] = fmt.Sprintf("t.%s %s NULLS LAST", quote(o.Column), direction)
		}
		b.WriteString(" ORDER BY " + strings.Join(orders, ", "))
	}

	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	return b.String(), args, nil
}

func buildUpdate(input *UpdateInput) (string, []any, error) {
	columns := sortedColumns(input.Patch)
	if err := validateColumns(input.Table, append(filterColumns(input.Filters), columns...)...); err != nil {
		return "", nil, err
	}
	patch, err := document(input.Patch)
	if err != nil {
		return "", nil, err
	}
	filters, where, err := filterDocument(input.Filters)
	if err != nil {
		return "", nil, err
	}

	quoted := make([]string, len(columns))
	selected := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quote(column)
		selected[i] = "p." + quote(column)
	}

	table := quote(string(input.Table))
	sql := fmt.Sprintf(
		"UPDATE %s AS t SET (%s) = (SELECT %s FROM jsonb_populate_record(NULL::%s, $1::jsonb) AS p) FROM jsonb_populate_record(NULL::%s, $2::jsonb) AS f%s",
		table, strings.Join(quoted, ", "), strings.Join(selected, ", "), table, table, where,
	)
	return sql, []any{patch, filters}, nil
}

func buildDelete(input *DeleteInput) (string, []any, error) {
	if err := validateColumns(input.Table, filterColumns(input.Filters)...); err != nil {
		return "", nil, err
	}
	doc, where, err := filterDocument(input.Filters)
	if err != nil {
		return "", nil, err
	}

	table := quote(string(input.Table))
	sql := fmt.Sprintf("DELETE FROM %s AS t USING jsonb_populate_record(NULL::%s, $1::jsonb) AS f%s", table, table, where)
	return sql, []any{doc}, nil
}
