package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/SamSam-01/Gamebrary/internal/services/session Service

import "context"

// Service defines the interface for play session operations
type Service interface {
	// CreateSession starts a session of a game with its players
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns a session with its participants in standings order
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SaveScores records final scores, ranks the participants and ends the session
	SaveScores(ctx context.Context, input *SaveScoresInput) (*SaveScoresOutput, error)

	// EndSession marks a session as ended
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// ListSessions returns the sessions a user hosted, newest first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
