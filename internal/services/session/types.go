package session

import (
	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/shopspring/decimal"
)

// Config holds configuration for the session service
type Config struct {
	// Store persists sessions and participants
	Store table.Store

	// Clock stamps session end times
	Clock clock.Clock
}

// PlayerInput describes one player joining a new session
type PlayerInput struct {
	// UserID is set for registered users
	UserID string

	// GuestName is set for guests
	GuestName string

	// TeamName optionally groups players
	TeamName string
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// GameID is the game being played
	GameID string

	// HostID is the user creating the session
	HostID string

	// ScoringSystemID optionally selects a scoring system of the game
	ScoringSystemID string

	// Notes are free-text notes
	Notes string

	// Players must contain at least one player
	Players []*PlayerInput
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session      *models.Session
	Participants []*models.SessionParticipant
}

// GetSessionInput contains parameters for loading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains a session and its participants
type GetSessionOutput struct {
	Session *models.Session

	// GameTitle is the title of the game played
	GameTitle string

	// Participants are ordered by position, unranked last
	Participants []*models.SessionParticipant

	// Standings is the display form of the participants
	Standings *models.Standings
}

// SaveScoresInput contains parameters for saving scores
type SaveScoresInput struct {
	SessionID string

	// UserID is the acting user; must be the host when set
	UserID string

	// Scores maps participant IDs to their final score. Participants not
	// present keep their current score.
	Scores map[string]decimal.Decimal
}

// SaveScoresOutput contains the ranked participants
type SaveScoresOutput struct {
	Session      *models.Session
	Participants []*models.SessionParticipant
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	SessionID string

	// UserID is the acting user; must be the host when set
	UserID string
}

// EndSessionOutput contains the ended session
type EndSessionOutput struct {
	Session *models.Session

	// AlreadyEnded indicates the session had been ended before
	AlreadyEnded bool
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
	HostID string

	// Limit caps the number of sessions; 0 means no limit
	Limit int
}

// ListSessionsOutput contains a host's sessions
type ListSessionsOutput struct {
	Sessions []*models.Session
}
