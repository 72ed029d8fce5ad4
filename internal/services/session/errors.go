package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     SessionError = "session not found"
	ErrGameNotFound        SessionError = "game not found"
	ErrParticipantNotFound SessionError = "participant not in session"
	ErrNoPlayers           SessionError = "at least one player is required"
	ErrNotHost             SessionError = "only the host can change this session"
	ErrNilConfig           SessionError = "config cannot be nil"
	ErrNilStore            SessionError = "table store cannot be nil"
	ErrNilClock            SessionError = "clock cannot be nil"
)
