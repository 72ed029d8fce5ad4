package api

import (
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ImportResponse is the outcome of a single import
type ImportResponse struct {
	Success bool   `json:"success"`
	GameID  string `json:"game_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newImportResponse(result *transfer.ImportResult) ImportResponse {
	return ImportResponse{Success: result.Success, GameID: result.GameID, Error: result.Error}
}

// RowResponse is one row of a CSV import
type RowResponse struct {
	Row   int    `json:"row"`
	Title string `json:"title"`
	ImportResponse
}

// CSVImportResponse is the outcome of a CSV import
type CSVImportResponse struct {
	Attempted int           `json:"attempted"`
	Succeeded int           `json:"succeeded"`
	Summary   string        `json:"summary"`
	Rows      []RowResponse `json:"rows"`
	Error     string        `json:"error,omitempty"`
}

// GamesResponse lists games
type GamesResponse struct {
	Games []*models.Game `json:"games"`
}

// AddGameRequest is the body of POST /games
type AddGameRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MinPlayers      int    `json:"min_players"`
	MaxPlayers      int    `json:"max_players"`
	DurationMinutes int    `json:"duration_minutes"`
	AgeMin          int    `json:"age_min"`
	Complexity      int    `json:"complexity"`
	IsPublic        bool   `json:"is_public"`
}

// RulesResponse is a game's rules
type RulesResponse struct {
	GameID   string               `json:"game_id"`
	Version  string               `json:"version,omitempty"`
	Sections []models.RuleSection `json:"sections"`
	CanEdit  bool                 `json:"can_edit"`
}

// UpdateRulesRequest is the body of PUT /games/{id}/rules
type UpdateRulesRequest struct {
	Sections []models.RuleSection `json:"sections"`
}

// PlayerRequest is one player of a new session
type PlayerRequest struct {
	UserID    string `json:"user_id"`
	GuestName string `json:"guest_name"`
	TeamName  string `json:"team_name"`
}

// CreateSessionRequest is the body of POST /sessions
type CreateSessionRequest struct {
	GameID          string           `json:"game_id"`
	ScoringSystemID string           `json:"scoring_system_id"`
	Notes           string           `json:"notes"`
	Players         []*PlayerRequest `json:"players"`
}

// SessionResponse is a session with its participants
type SessionResponse struct {
	Session      *models.Session              `json:"session"`
	GameTitle    string                       `json:"game_title,omitempty"`
	Participants []*models.SessionParticipant `json:"participants"`
	Standings    *models.Standings            `json:"standings,omitempty"`
}

// SessionsResponse lists sessions
type SessionsResponse struct {
	Sessions []*models.Session `json:"sessions"`
}

// SaveScoresRequest is the body of PUT /sessions/{id}/scores. Scores are
// keyed by participant ID and accept numbers or numeric strings.
type SaveScoresRequest struct {
	Scores map[string]decimal.Decimal `json:"scores"`
}

// EndSessionResponse is the outcome of ending a session
type EndSessionResponse struct {
	Session      *models.Session `json:"session"`
	AlreadyEnded bool            `json:"already_ended"`
}

// LibraryItemResponse is a library entry with its game
type LibraryItemResponse struct {
	Entry *models.LibraryEntry `json:"entry"`
	Game  *models.Game         `json:"game"`
}

func newLibraryItems(items []*catalog.LibraryItem) []LibraryItemResponse {
	return lo.Map(items, func(item *catalog.LibraryItem, _ int) LibraryItemResponse {
		return LibraryItemResponse{Entry: item.Entry, Game: item.Game}
	})
}

// LibraryResponse is a user's library
type LibraryResponse struct {
	Items []LibraryItemResponse `json:"items"`
}

// AddToLibraryRequest is the body of POST /library
type AddToLibraryRequest struct {
	GameID string                 `json:"game_id"`
	Status models.OwnershipStatus `json:"status"`
	Notes  string                 `json:"notes"`
}

// UpdateProfileRequest is the body of PUT /profile
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// FriendshipResponse is a friendship with the other user's profile
type FriendshipResponse struct {
	*models.Friendship
	Friend *models.Profile `json:"friend,omitempty"`
}

func newFriendships(friendships []*models.Friendship) []FriendshipResponse {
	return lo.Map(friendships, func(f *models.Friendship, _ int) FriendshipResponse {
		return FriendshipResponse{Friendship: f, Friend: f.Friend}
	})
}

// FriendshipsResponse lists friendships
type FriendshipsResponse struct {
	Friendships []FriendshipResponse `json:"friendships"`
}

// FriendRequestRequest is the body of POST /friends/requests
type FriendRequestRequest struct {
	FriendID string `json:"friend_id"`
}
