package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidParticipant is returned when a participant is neither or both a user and a guest
var ErrInvalidParticipant = errors.New("participant must be exactly one of a registered user or a guest")

// SessionParticipant represents a scored entrant in a session
type SessionParticipant struct {
	// ID is a unique identifier for this participation
	ID string `json:"id"`

	// SessionID is the session the participant plays in
	SessionID string `json:"session_id"`

	// UserID references a registered user; nil for guests
	UserID *string `json:"user_id"`

	// GuestName is the free-text name of a guest; nil for registered users
	GuestName *string `json:"guest_name"`

	// TeamName groups participants into teams
	TeamName *string `json:"team_name"`

	// FinalScore is the participant's score
	FinalScore decimal.Decimal `json:"final_score"`

	// Position is the computed 1-based rank; nil until scores are saved
	Position *int `json:"position"`

	// ScoreDetails is an open-ended per-round breakdown
	ScoreDetails json.RawMessage `json:"score_details,omitempty"`

	// CreatedAt is when the participant was added
	CreatedAt time.Time `json:"created_at"`

	// Username is resolved from the participant's profile; not persisted
	Username string `json:"-"`
}

// Validate checks that exactly one of UserID and GuestName is set
func (p *SessionParticipant) Validate() error {
	hasUser := p.UserID != nil && strings.TrimSpace(*p.UserID) != ""
	hasGuest := p.GuestName != nil && strings.TrimSpace(*p.GuestName) != ""
	if hasUser == hasGuest {
		return ErrInvalidParticipant
	}
	return nil
}

// IsGuest reports whether the participant is a free-text guest
func (p *SessionParticipant) IsGuest() bool {
	return p.UserID == nil && p.GuestName != nil
}

// DisplayName returns the name to show for the participant
func (p *SessionParticipant) DisplayName() string {
	switch {
	case p.GuestName != nil && *p.GuestName != "":
		return *p.GuestName
	case p.Username != "":
		return p.Username
	case p.UserID != nil:
		return *p.UserID
	}
	return "Unknown"
}
