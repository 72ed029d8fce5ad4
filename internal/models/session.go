package models

import (
	"time"
)

// Session represents a play session of a game
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// GameID is the game being played
	GameID string `json:"game_id"`

	// HostID is the user who created the session
	HostID string `json:"host_id"`

	// ScoringSystemID is the scoring system in use, if any
	ScoringSystemID *string `json:"scoring_system_id"`

	// StartedAt is when play started
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the session was ended; nil while in progress
	EndedAt *time.Time `json:"ended_at"`

	// Notes are free-text notes from the host
	Notes string `json:"notes"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`
}

// IsEnded reports whether the session has been ended
func (s *Session) IsEnded() bool {
	return s.EndedAt != nil
}
