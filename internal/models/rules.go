package models

import (
	"encoding/json"
	"time"
)

// RuleSection is one titled block of a rules document
type RuleSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RulesDocument is the typed view of GameRules.Content
type RulesDocument struct {
	Sections []RuleSection `json:"sections"`
}

// GameRules holds the rules text for a game
type GameRules struct {
	// ID is the unique identifier for the rules record
	ID string `json:"id"`

	// GameID is the game these rules belong to
	GameID string `json:"game_id"`

	// Content is the rules document as supplied, kept verbatim
	Content json.RawMessage `json:"content"`

	// Version is the rules revision label
	Version string `json:"version"`

	// Language is the language code of the rules text
	Language string `json:"language"`

	// CreatedAt is when the rules were created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the rules were last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// Sections decodes the content into rule sections. Content that does not
// have the sections shape yields no sections rather than an error.
func (r *GameRules) Sections() []RuleSection {
	if r == nil || len(r.Content) == 0 {
		return nil
	}
	var doc RulesDocument
	if err := json.Unmarshal(r.Content, &doc); err != nil {
		return nil
	}
	return doc.Sections
}
