package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringConfig_KnownKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ScoringKind
		describe string
	}{
		{name: "points", input: `{"type":"points"}`, kind: ScoringKindPoints, describe: "Points"},
		{name: "formula", input: `{"type":"formula","formula":"sum(rounds)"}`, kind: ScoringKindFormula, describe: "Formula: sum(rounds)"},
		{name: "schedule", input: `{"type":"schedule","points":[10,6,3.5]}`, kind: ScoringKindSchedule, describe: "Schedule: 10/6/3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg ScoringConfig
			require.NoError(t, json.Unmarshal([]byte(tt.input), &cfg))
			assert.Equal(t, tt.kind, cfg.Kind)
			assert.Equal(t, tt.describe, cfg.Describe())

			out, err := json.Marshal(cfg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestScoringConfig_FallsBackToCustom(t *testing.T) {
	inputs := []string{
		`{"type":"points","bonus":{"longestRoad":2}}`,
		`{"type":"elo","k":32}`,
		`{"rounds":5}`,
		`{"type":"formula","formula":42}`,
		`[1,2,3]`,
		`"tally"`,
	}

	for _, input := range inputs {
		var cfg ScoringConfig
		require.NoError(t, json.Unmarshal([]byte(input), &cfg), input)
		assert.Equal(t, ScoringKindCustom, cfg.Kind, input)

		out, err := json.Marshal(cfg)
		require.NoError(t, err)
		assert.JSONEq(t, input, string(out), input)
	}
}

func TestScoringConfig_NullAndZero(t *testing.T) {
	var cfg ScoringConfig
	require.NoError(t, json.Unmarshal([]byte(`null`), &cfg))
	assert.True(t, cfg.IsZero())

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestScoringConfig_PointsForPlace(t *testing.T) {
	cfg := ScheduleConfig(10, 6, 3)

	points, ok := cfg.PointsForPlace(2)
	assert.True(t, ok)
	assert.Equal(t, 6.0, points)

	_, ok = cfg.PointsForPlace(4)
	assert.False(t, ok)

	_, ok = PointsConfig().PointsForPlace(1)
	assert.False(t, ok)
}

func TestScoringSystem_DecodesNestedConfig(t *testing.T) {
	var system ScoringSystem
	err := json.Unmarshal([]byte(`{"id":"s1","game_id":"g1","name":"Standard","config":{"type":"points"},"is_automated":false}`), &system)
	require.NoError(t, err)
	assert.Equal(t, "Standard", system.Name)
	assert.Equal(t, ScoringKindPoints, system.Config.Kind)
}
