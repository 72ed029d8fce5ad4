package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsert(t *testing.T) {
	sql, args, err := buildInsert(Games, Row{"title": "Catan", "max_players": 4})
	require.NoError(t, err)

	assert.Equal(t,
		`INSERT INTO "games" AS t ("max_players", "title") SELECT r."max_players", r."title" FROM jsonb_populate_record(NULL::"games", $1::jsonb) AS r RETURNING to_jsonb(t)`,
		sql)
	assert.Equal(t, []any{`{"max_players":4,"title":"Catan"}`}, args)
}

func TestBuildInsertRejectsBadColumn(t *testing.T) {
	_, _, err := buildInsert(Games, Row{`title" = 1; --`: "x"})
	assert.ErrorIs(t, err, ErrInvalidColumn)

	_, _, err = buildInsert("nope", Row{"title": "x"})
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name     string
		query    *Query
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filters",
			query:    &Query{Table: Games},
			wantSQL:  `SELECT to_jsonb(t) FROM "games" AS t, jsonb_populate_record(NULL::"games", $1::jsonb) AS f`,
			wantArgs: []any{`{}`},
		},
		{
			name: "filters with null",
			query: &Query{
				Table:   SessionPlayers,
				Filters: []Filter{Eq("session_id", "s-1"), Eq("position", nil)},
			},
			wantSQL:  `SELECT to_jsonb(t) FROM "session_players" AS t, jsonb_populate_record(NULL::"session_players", $1::jsonb) AS f WHERE t."session_id" = f."session_id" AND t."position" IS NULL`,
			wantArgs: []any{`{"session_id":"s-1"}`},
		},
		{
			name: "search order and limit",
			query: &Query{
				Table:   Games,
				Filters: []Filter{Eq("is_public", true)},
				Match:   &Match{Column: "title", Substring: "50%_off"},
				OrderBy: []Order{{Column: "created_at", Descending: true}},
				Limit:   2,
			},
			wantSQL:  `SELECT to_jsonb(t) FROM "games" AS t, jsonb_populate_record(NULL::"games", $1::jsonb) AS f WHERE t."is_public" = f."is_public" AND t."title" ILIKE $2 ORDER BY t."created_at" DESC NULLS LAST LIMIT 2`,
			wantArgs: []any{`{"is_public":true}`, `%50\%\_off%`},
		},
		{
			name: "search without filters",
			query: &Query{
				Table:   Games,
				Match:   &Match{Column: "title", Substring: "cat"},
				OrderBy: []Order{{Column: "title"}},
			},
			wantSQL:  `SELECT to_jsonb(t) FROM "games" AS t, jsonb_populate_record(NULL::"games", $1::jsonb) AS f WHERE t."title" ILIKE $2 ORDER BY t."title" ASC NULLS LAST`,
			wantArgs: []any{`{}`, `%cat%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildSelect(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildSelectDuplicateFilter(t *testing.T) {
	_, _, err := buildSelect(&Query{Table: Games, Filters: []Filter{Eq("id", "a"), Eq("id", "b")}})
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestBuildUpdate(t *testing.T) {
	sql, args, err := buildUpdate(&UpdateInput{
		Table:   SessionPlayers,
		Filters: []Filter{Eq("id", "p-1")},
		Patch:   Row{"final_score": 12, "position": 1},
	})
	require.NoError(t, err)

	assert.Equal(t,
		`UPDATE "session_players" AS t SET ("final_score", "position") = (SELECT p."final_score", p."position" FROM jsonb_populate_record(NULL::"session_players", $1::jsonb) AS p) FROM jsonb_populate_record(NULL::"session_players", $2::jsonb) AS f WHERE t."id" = f."id"`,
		sql)
	assert.Equal(t, []any{`{"final_score":12,"position":1}`, `{"id":"p-1"}`}, args)
}

func TestBuildDelete(t *testing.T) {
	sql, args, err := buildDelete(&DeleteInput{
		Table:   UserLibraries,
		Filters: []Filter{Eq("user_id", "u-1"), Eq("game_id", "g-1")},
	})
	require.NoError(t, err)

	assert.Equal(t,
		`DELETE FROM "user_libraries" AS t USING jsonb_populate_record(NULL::"user_libraries", $1::jsonb) AS f WHERE t."user_id" = f."user_id" AND t."game_id" = f."game_id"`,
		sql)
	assert.Equal(t, []any{`{"game_id":"g-1","user_id":"u-1"}`}, args)
}
