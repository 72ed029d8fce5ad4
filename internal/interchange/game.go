// Package interchange converts between the external game interchange shape
// (camelCase JSON objects and flat CSV rows) and Gamebrary's records.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/models"
)

// Defaults applied to fields an import leaves absent or zero
const (
	DefaultDescription     = ""
	DefaultMinPlayers      = 2
	DefaultMaxPlayers      = 4
	DefaultDurationMinutes = 60
	DefaultAgeMin          = 8
	DefaultComplexity      = 3

	// DefaultRulesVersion and DefaultRulesLanguage label imported rules
	DefaultRulesVersion  = "1.0"
	DefaultRulesLanguage = "en"
)

// ErrTitleRequired is returned when a game has no title
var ErrTitleRequired = errors.New("title is required")

// ScoringSystem is the interchange form of a scoring system
type ScoringSystem struct {
	Name        string               `json:"name"`
	Config      models.ScoringConfig `json:"config"`
	IsAutomated bool                 `json:"isAutomated"`
}

// Game is the interchange form of a game with its rules and scoring system.
// Numeric fields use zero for "absent".
type Game struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	MinPlayers      int             `json:"minPlayers"`
	MaxPlayers      int             `json:"maxPlayers"`
	DurationMinutes int             `json:"durationMinutes"`
	AgeMin          int             `json:"ageMin"`
	Complexity      int             `json:"complexity"`
	Rules           json.RawMessage `json:"rules,omitempty"`
	ScoringSystem   *ScoringSystem  `json:"scoringSystem,omitempty"`
}

// HasRules reports whether a rules document was supplied
func (g *Game) HasRules() bool {
	trimmed := bytes.TrimSpace(g.Rules)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Validate checks the fields an import cannot default
func (g *Game) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// WithDefaults returns a copy with every absent field set to its default
func (g Game) WithDefaults() Game {
	if g.Description == "" {
		g.Description = DefaultDescription
	}
	g.MinPlayers = orDefault(g.MinPlayers, DefaultMinPlayers)
	g.MaxPlayers = orDefault(g.MaxPlayers, DefaultMaxPlayers)
	g.DurationMinutes = orDefault(g.DurationMinutes, DefaultDurationMinutes)
	g.AgeMin = orDefault(g.AgeMin, DefaultAgeMin)
	g.Complexity = orDefault(g.Complexity, DefaultComplexity)
	return g
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// RuleSections decodes the rules into sections for display
func (g *Game) RuleSections() []models.RuleSection {
	rules := models.GameRules{Content: g.Rules}
	return rules.Sections()
}

// ParseJSON decodes a single interchange object
func ParseJSON(data []byte) (*Game, error) {
	var game Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// FromRecords assembles the interchange object for a persisted game. Rules
// and scoring may be nil.
func FromRecords(game *models.Game, rules *models.GameRules, scoring *models.ScoringSystem) *Game {
	out := &Game{
		Title:           game.Title,
		Description:     game.Description,
		MinPlayers:      game.MinPlayers,
		MaxPlayers:      game.MaxPlayers,
		DurationMinutes: game.DurationMinutes,
		AgeMin:          game.AgeMin,
		Complexity:      game.Complexity,
	}
	if rules != nil && len(rules.Content) > 0 {
		out.Rules = append(json.RawMessage(nil), rules.Content...)
	}
	if scoring != nil {
		out.ScoringSystem = &ScoringSystem{
			Name:        scoring.Name,
			Config:      scoring.Config,
			IsAutomated: scoring.IsAutomated,
		}
	}
	return out
}

// MarshalIndent renders the interchange object as two-space indented JSON
func (g *Game) MarshalIndent() (string, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns a download file name for an exported game
func FileName(title string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if name == "" {
		name = "game"
	}
	return name + ".json"
}
