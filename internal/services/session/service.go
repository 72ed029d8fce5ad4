package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/scoring"
	"github.com/samber/lo"
)

// service implements the Service interface
type service struct {
	store table.Store
	clock clock.Clock
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store: cfg.Store,
		clock: cfg.Clock,
	}, nil
}

// CreateSession starts a session of a game with its players
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	// Validate every player before writing anything
	participants := make([]*models.SessionParticipant, 0, len(input.Players))
	for _, player := range input.Players {
		participant := &models.SessionParticipant{
			UserID:    optional(player.UserID),
			GuestName: optional(player.GuestName),
			TeamName:  optional(player.TeamName),
		}
		if err := participant.Validate(); err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	// Make sure the game exists
	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	sessionRow := table.Row{
		"game_id":    input.GameID,
		"host_id":    input.HostID,
		"notes":      strings.TrimSpace(input.Notes),
		"started_at": table.Timestamp(s.clock.Now()),
	}
	if input.ScoringSystemID != "" {
		sessionRow["scoring_system_id"] = input.ScoringSystemID
	}

	created, err := s.store.Insert(ctx, &table.InsertInput{Table: table.GameSessions, Row: sessionRow})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	var session models.Session
	if err := table.Decode(created, &session); err != nil {
		return nil, err
	}

	for i, participant := range participants {
		row := table.Row{
			"session_id":  session.ID,
			"user_id":     participant.UserID,
			"guest_name":  participant.GuestName,
			"team_name":   participant.TeamName,
			"final_score": 0,
		}

		inserted, err := s.store.Insert(ctx, &table.InsertInput{Table: table.SessionPlayers, Row: row})
		if err != nil {
			return nil, fmt.Errorf("failed to add player to session: %w", err)
		}
		if err := table.Decode(inserted, participants[i]); err != nil {
			return nil, err
		}
	}

	return &CreateSessionOutput{
		Session:      &session,
		Participants: participants,
	}, nil
}

// GetSession returns a session with its participants in standings order
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	gameTitle := ""
	game, err := s.getGame(ctx, session.GameID)
	switch {
	case err == nil:
		gameTitle = game.Title
	case !errors.Is(err, ErrGameNotFound):
		return nil, err
	}

	participants, err := s.listParticipants(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	if err := s.resolveUsernames(ctx, participants); err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:      session,
		GameTitle:    gameTitle,
		Participants: participants,
		Standings:    models.NewStandings(session, gameTitle, participants),
	}, nil
}

// SaveScores applies the given scores, ranks every participant and writes
// the new score and position of each. The session is ended if it is not yet.
func (s *service) SaveScores(ctx context.Context, input *SaveScoresInput) (*SaveScoresOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if input.UserID != "" && input.UserID != session.HostID {
		return nil, ErrNotHost
	}

	participants, err := s.listParticipants(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(participants, func(p *models.SessionParticipant) string {
		return p.ID
	})
	for participantID, score := range input.Scores {
		participant, ok := byID[participantID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
		}
		participant.FinalScore = score
	}

	ranked := scoring.Rank(participants)
	for _, participant := range ranked {
		err := s.store.Update(ctx, &table.UpdateInput{
			Table:   table.SessionPlayers,
			Filters: []table.Filter{table.Eq("id", participant.ID)},
			Patch: table.Row{
				"final_score": participant.FinalScore,
				"position":    participant.Position,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save score: %w", err)
		}
	}

	if !session.IsEnded() {
		if err := s.end(ctx, session); err != nil {
			return nil, err
		}
	}

	if err := s.resolveUsernames(ctx, ranked); err != nil {
		return nil, err
	}

	return &SaveScoresOutput{
		Session:      session,
		Participants: ranked,
	}, nil
}

// EndSession marks a session as ended. Ending an ended session keeps the
// original end time.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if input.UserID != "" && input.UserID != session.HostID {
		return nil, ErrNotHost
	}

	if session.IsEnded() {
		return &EndSessionOutput{Session: session, AlreadyEnded: true}, nil
	}

	if err := s.end(ctx, session); err != nil {
		return nil, err
	}

	return &EndSessionOutput{Session: session}, nil
}

// ListSessions returns the sessions a user hosted, newest first
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	rows, err := s.store.Select(ctx, &table.Query{
		Table:   table.GameSessions,
		Filters: []table.Filter{table.Eq("host_id", input.HostID)},
		OrderBy: []table.Order{{Column: "started_at", Descending: true}},
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions, err := table.DecodeAll[models.Session](rows)
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}

func (s *service) end(ctx context.Context, session *models.Session) error {
	now := s.clock.Now()
	err := s.store.Update(ctx, &table.UpdateInput{
		Table:   table.GameSessions,
		Filters: []table.Filter{table.Eq("id", session.ID)},
		Patch:   table.Row{"ended_at": table.Timestamp(now)},
	})
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	session.EndedAt = &now
	return nil
}

func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.GameSessions,
		Filters: []table.Filter{table.Eq("id", sessionID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := table.Decode(row, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.Games,
		Filters: []table.Filter{table.Eq("id", gameID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := table.Decode(row, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *service) listParticipants(ctx context.Context, sessionID string) ([]*models.SessionParticipant, error) {
	rows, err := s.store.Select(ctx, &table.Query{
		Table:   table.SessionPlayers,
		Filters: []table.Filter{table.Eq("session_id", sessionID)},
		OrderBy: []table.Order{{Column: "position"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return table.DecodeAll[models.SessionParticipant](rows)
}

// resolveUsernames fills Username for registered participants from their
// profiles; a missing profile leaves the name empty
func (s *service) resolveUsernames(ctx context.Context, participants []*models.SessionParticipant) error {
	userIDs := lo.Uniq(lo.FilterMap(participants, func(p *models.SessionParticipant, _ int) (string, bool) {
		if p.UserID == nil {
			return "", false
		}
		return *p.UserID, true
	}))

	usernames := make(map[string]string, len(userIDs))
	for _, userID := range userIDs {
		row, err := s.store.SelectOne(ctx, &table.Query{
			Table:   table.Profiles,
			Filters: []table.Filter{table.Eq("id", userID)},
		})
		if err != nil {
			if errors.Is(err, table.ErrNotFound) {
				continue
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}
		usernames[userID] = row.String("username")
	}

	for _, p := range participants {
		if p.UserID != nil {
			p.Username = usernames[*p.UserID]
		}
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
