package table

import "time"

// tableSchema mirrors the column defaults declared in the SQL migrations so
// that stores without server-side defaults produce the same rows
type tableSchema struct {
	// generatedID is true when the store assigns the id column
	generatedID bool

	// defaults returns the column defaults for a new row
	defaults func(now string) Row
}

var schema = map[Name]tableSchema{
	Profiles: {
		defaults: func(now string) Row {
			return Row{"avatar_url": nil, "bio": nil, "created_at": now, "updated_at": now}
		},
	},
	Games: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{
				"description":      "",
				"min_players":      2,
				"max_players":      4,
				"duration_minutes": 60,
				"age_min":          8,
				"complexity":       3,
				"image_url":        nil,
				"creator_id":       nil,
				"is_public":        false,
				"created_at":       now,
				"updated_at":       now,
			}
		},
	},
	GameRules: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{
				"content":    map[string]any{"sections": []any{}},
				"version":    "1.0",
				"language":   "en",
				"created_at": now,
				"updated_at": now,
			}
		},
	},
	ScoringSystems: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{"config": map[string]any{}, "is_automated": false, "created_at": now}
		},
	},
	UserLibraries: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{"ownership_status": "owned", "notes": "", "added_at": now}
		},
	},
	GameSessions: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{
				"scoring_system_id": nil,
				"started_at":        now,
				"ended_at":          nil,
				"notes":             "",
				"created_at":        now,
			}
		},
	},
	SessionPlayers: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{
				"user_id":       nil,
				"guest_name":    nil,
				"team_name":     nil,
				"final_score":   0,
				"position":      nil,
				"score_details": map[string]any{},
				"created_at":    now,
			}
		},
	},
	Friendships: {
		generatedID: true,
		defaults: func(now string) Row {
			return Row{"status": "pending", "created_at": now, "updated_at": now}
		},
	},
}

// Timestamp formats t the way stores persist timestamps
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
