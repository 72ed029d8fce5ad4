package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScoringKind identifies a known scoring configuration shape
type ScoringKind string

const (
	// ScoringKindPoints is a plain running point total
	ScoringKindPoints ScoringKind = "points"

	// ScoringKindFormula computes scores from a formula expression
	ScoringKindFormula ScoringKind = "formula"

	// ScoringKindSchedule awards fixed points by finishing place
	ScoringKindSchedule ScoringKind = "schedule"

	// ScoringKindCustom is any configuration not recognized above
	ScoringKindCustom ScoringKind = "custom"
)

// ScoringConfig is a tagged union over the known scoring configurations.
// Anything that does not decode cleanly into a known kind is kept as raw
// JSON under ScoringKindCustom and re-emitted unchanged.
type ScoringConfig struct {
	Kind ScoringKind

	// Formula is set for ScoringKindFormula
	Formula string

	// Schedule is set for ScoringKindSchedule; index 0 is first place
	Schedule []float64

	raw json.RawMessage
}

// PointsConfig returns the default points configuration
func PointsConfig() ScoringConfig {
	return ScoringConfig{Kind: ScoringKindPoints}
}

// FormulaConfig returns a formula configuration
func FormulaConfig(formula string) ScoringConfig {
	return ScoringConfig{Kind: ScoringKindFormula, Formula: formula}
}

// ScheduleConfig returns a points-by-place configuration
func ScheduleConfig(points ...float64) ScoringConfig {
	return ScoringConfig{Kind: ScoringKindSchedule, Schedule: points}
}

// CustomConfig wraps an arbitrary JSON configuration
func CustomConfig(raw json.RawMessage) ScoringConfig {
	return ScoringConfig{Kind: ScoringKindCustom, raw: append(json.RawMessage(nil), raw...)}
}

// IsZero reports whether no configuration was supplied
func (c ScoringConfig) IsZero() bool {
	return c.Kind == "" && len(c.raw) == 0
}

// Raw returns the stored JSON of a custom configuration
func (c ScoringConfig) Raw() json.RawMessage {
	return c.raw
}

// PointsForPlace returns the scheduled points for a 1-based place
func (c ScoringConfig) PointsForPlace(place int) (float64, bool) {
	if c.Kind != ScoringKindSchedule || place < 1 || place > len(c.Schedule) {
		return 0, false
	}
	return c.Schedule[place-1], true
}

// Describe returns a short human readable summary
func (c ScoringConfig) Describe() string {
	switch c.Kind {
	case ScoringKindPoints:
		return "Points"
	case ScoringKindFormula:
		return "Formula: " + c.Formula
	case ScoringKindSchedule:
		parts := make([]string, 0, len(c.Schedule))
		for _, p := range c.Schedule {
			parts = append(parts, strconv.FormatFloat(p, 'f', -1, 64))
		}
		return "Schedule: " + strings.Join(parts, "/")
	case ScoringKindCustom:
		return "Custom"
	}
	return "None"
}

// MarshalJSON implements json.Marshaler
func (c ScoringConfig) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ScoringKindPoints:
		return json.Marshal(struct {
			Type ScoringKind `json:"type"`
		}{ScoringKindPoints})
	case ScoringKindFormula:
		return json.Marshal(struct {
			Type    ScoringKind `json:"type"`
			Formula string      `json:"formula"`
		}{ScoringKindFormula, c.Formula})
	case ScoringKindSchedule:
		schedule := c.Schedule
		if schedule == nil {
			schedule = []float64{}
		}
		return json.Marshal(struct {
			Type   ScoringKind `json:"type"`
			Points []float64   `json:"points"`
		}{ScoringKindSchedule, schedule})
	case ScoringKindCustom, "":
		if len(c.raw) == 0 {
			return []byte("null"), nil
		}
		return c.raw, nil
	}
	return nil, fmt.Errorf("unknown scoring kind %q", c.Kind)
}

// UnmarshalJSON implements json.Unmarshaler
func (c *ScoringConfig) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return fmt.Errorf("invalid scoring config")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		*c = ScoringConfig{}
		return nil
	}

	*c = CustomConfig(trimmed)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil
	}
	var kind ScoringKind
	if err := json.Unmarshal(fields["type"], &kind); err != nil {
		return nil
	}

	switch kind {
	case ScoringKindPoints:
		if len(fields) == 1 {
			*c = PointsConfig()
		}
	case ScoringKindFormula:
		var formula string
		if len(fields) == 2 && json.Unmarshal(fields["formula"], &formula) == nil && fields["formula"] != nil {
			*c = FormulaConfig(formula)
		}
	case ScoringKindSchedule:
		var points []float64
		if len(fields) == 2 && fields["points"] != nil && json.Unmarshal(fields["points"], &points) == nil && points != nil {
			*c = ScheduleConfig(points...)
		}
	}
	return nil
}

// ScoringSystem describes how a game is scored
type ScoringSystem struct {
	// ID is the unique identifier for the scoring system
	ID string `json:"id"`

	// GameID is the game this system scores
	GameID string `json:"game_id"`

	// Name is the display name, e.g. "Standard"
	Name string `json:"name"`

	// Config is the scoring configuration
	Config ScoringConfig `json:"config"`

	// IsAutomated indicates scores are computed rather than entered
	IsAutomated bool `json:"is_automated"`

	// CreatedAt is when the system was created
	CreatedAt time.Time `json:"created_at"`
}
