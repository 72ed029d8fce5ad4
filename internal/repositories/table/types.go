package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound is returned when a single-row read matches nothing
	ErrNotFound = errors.New("record not found")

	// ErrMultipleRows is returned when a single-row read matches more than one row
	ErrMultipleRows = errors.New("multiple records found")

	// ErrUnknownTable is returned for a table outside the schema
	ErrUnknownTable = errors.New("unknown table")

	// ErrDuplicate is returned when inserting a row whose key already exists
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidColumn is returned for a column name that is not a plain identifier
	ErrInvalidColumn = errors.New("invalid column name")
)

// Name is a table in the Gamebrary schema
type Name string

const (
	Profiles       Name = "profiles"
	Games          Name = "games"
	GameRules      Name = "game_rules"
	ScoringSystems Name = "scoring_systems"
	UserLibraries  Name = "user_libraries"
	GameSessions   Name = "game_sessions"
	SessionPlayers Name = "session_players"
	Friendships    Name = "friendships"
)

// Row is a record keyed by column name. Rows returned by a Store hold
// JSON-normalized values: string, float64, bool, nil, map[string]any and []any.
type Row map[string]any

// String returns the column as a string, or "" when absent or not a string
func (r Row) String(column string) string {
	s, _ := r[column].(string)
	return s
}

// Filter matches rows whose column equals Value; a nil Value matches NULL
type Filter struct {
	Column string
	Value  any
}

// Eq builds an equality filter
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Order sorts rows by a column; NULLs always sort last
type Order struct {
	Column     string
	Descending bool
}

// Match is a case-insensitive substring match on one column
type Match struct {
	Column    string
	Substring string
}

// Query selects rows from a table
type Query struct {
	Table   Name
	Filters []Filter
	Match   *Match
	OrderBy []Order
	Limit   int
}

// InsertInput contains parameters for inserting a row
type InsertInput struct {
	Table Name
	Row   Row
}

// UpdateInput contains parameters for updating rows
type UpdateInput struct {
	Table   Name
	Filters []Filter
	Patch   Row
}

// DeleteInput contains parameters for deleting rows
type DeleteInput struct {
	Table   Name
	Filters []Filter
}

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validateColumns(table Name, columns ...string) error {
	if _, ok := schema[table]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	for _, column := range columns {
		if !columnPattern.MatchString(column) {
			return fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
	}
	return nil
}

func (q *Query) columns() []string {
	columns := make([]string, 0, len(q.Filters)+len(q.OrderBy)+1)
	for _, f := range q.Filters {
		columns = append(columns, f.Column)
	}
	for _, o := range q.OrderBy {
		columns = append(columns, o.Column)
	}
	if q.Match != nil {
		columns = append(columns, q.Match.Column)
	}
	return columns
}

func filterColumns(filters []Filter) []string {
	columns := make([]string, 0, len(filters))
	for _, f := range filters {
		columns = append(columns, f.Column)
	}
	return columns
}

func rowColumns(row Row) []string {
	columns := make([]string, 0, len(row))
	for column := range row {
		columns = append(columns, column)
	}
	return columns
}

// Encode converts a value into a JSON-normalized row
func Encode(v any) (Row, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row: %w", err)
	}
	var row Row
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to normalize row: %w", err)
	}
	return row, nil
}

// Decode converts a row into a model
func Decode(row Row, out any) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode row: %w", err)
	}
	return nil
}

// DecodeAll converts rows into a slice of models
func DecodeAll[T any](rows []Row) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		var item T
		if err := Decode(row, &item); err != nil {
			return nil, err
		}
		out = append(out, &item)
	}
	return out, nil
}
