package catalog

import (
	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
)

// Config holds configuration for the catalog service
type Config struct {
	// Store persists games, rules and libraries
	Store table.Store

	// Importer writes new games with their related records
	Importer transfer.Service

	// Clock stamps rule edits
	Clock clock.Clock
}

// AddGameInput contains parameters for adding a game by hand. Zero numeric
// fields take the import defaults.
type AddGameInput struct {
	UserID          string
	Title           string
	Description     string
	MinPlayers      int
	MaxPlayers      int
	DurationMinutes int
	AgeMin          int
	Complexity      int
	IsPublic        bool
}

// AddGameOutput contains the created game's ID
type AddGameOutput struct {
	GameID string
}

// GetGameInput contains parameters for loading a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains a game
type GetGameOutput struct {
	Game *models.Game
}

// ListPublicGamesInput contains parameters for browsing public games
type ListPublicGamesInput struct {
	// Search filters titles by case-insensitive substring when set
	Search string

	// Limit caps the number of games; 0 means no limit
	Limit int
}

// ListPublicGamesOutput contains public games
type ListPublicGamesOutput struct {
	Games []*models.Game
}

// GetRulesInput contains parameters for loading rules
type GetRulesInput struct {
	GameID string

	// UserID is the viewer, used to report CanEdit
	UserID string
}

// GetRulesOutput contains a game's rules
type GetRulesOutput struct {
	Game *models.Game

	// Rules is nil when the game has no rules yet
	Rules *models.GameRules

	// Sections is the decoded rules content
	Sections []models.RuleSection

	// CanEdit indicates the viewer created the game
	CanEdit bool
}

// UpdateRulesInput contains parameters for editing rules
type UpdateRulesInput struct {
	GameID   string
	UserID   string
	Sections []models.RuleSection
}

// UpdateRulesOutput contains the saved rules
type UpdateRulesOutput struct {
	Rules *models.GameRules
}

// LibraryItem is a library entry with its game
type LibraryItem struct {
	Entry *models.LibraryEntry
	Game  *models.Game
}

// GetLibraryInput contains parameters for loading a library
type GetLibraryInput struct {
	UserID string
}

// GetLibraryOutput contains a user's library
type GetLibraryOutput struct {
	Items []*LibraryItem
}

// AddToLibraryInput contains parameters for adding to a library
type AddToLibraryInput struct {
	UserID string
	GameID string

	// Status defaults to owned
	Status models.OwnershipStatus

	Notes string
}

// AddToLibraryOutput contains the new library entry
type AddToLibraryOutput struct {
	Entry *models.LibraryEntry
}

// RemoveFromLibraryInput contains parameters for removing from a library
type RemoveFromLibraryInput struct {
	UserID string
	GameID string
}

// IsInLibraryInput contains parameters for a library membership check
type IsInLibraryInput struct {
	UserID string
	GameID string
}
