package models

import "github.com/shopspring/decimal"

// StandingEntry is one line of a session's standings
type StandingEntry struct {
	// ParticipantID is the session participant
	ParticipantID string `json:"participant_id"`

	// Name is the participant's display name
	Name string `json:"name"`

	// Score is the participant's final score
	Score decimal.Decimal `json:"score"`

	// Position is the participant's rank, 0 when unranked
	Position int `json:"position"`
}

// Standings represents the ranked results of a session
type Standings struct {
	// SessionID is the unique identifier for the session
	SessionID string `json:"session_id"`

	// GameTitle is the title of the game played
	GameTitle string `json:"game_title"`

	// Ended indicates the session has been ended
	Ended bool `json:"ended"`

	// Entries are ordered by position, unranked participants last
	Entries []*StandingEntry `json:"entries"`
}

// NewStandings builds standings from participants already ordered for display
func NewStandings(session *Session, gameTitle string, participants []*SessionParticipant) *Standings {
	standings := &Standings{
		SessionID: session.ID,
		GameTitle: gameTitle,
		Ended:     session.IsEnded(),
		Entries:   make([]*StandingEntry, 0, len(participants)),
	}
	for _, p := range participants {
		entry := &StandingEntry{
			ParticipantID: p.ID,
			Name:          p.DisplayName(),
			Score:         p.FinalScore,
		}
		if p.Position != nil {
			entry.Position = *p.Position
		}
		standings.Entries = append(standings.Entries, entry)
	}
	return standings
}
