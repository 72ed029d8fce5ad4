package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/SamSam-01/Gamebrary/internal/services/catalog Service

import "context"

// Service defines the interface for browsing games, rules and libraries
type Service interface {
	// AddGame creates a game with empty rules and a standard scoring system
	// and adds it to the creator's library
	AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error)

	// GetGame returns a single game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListPublicGames returns public games, newest first
	ListPublicGames(ctx context.Context, input *ListPublicGamesInput) (*ListPublicGamesOutput, error)

	// GetRules returns a game's rules, if it has any
	GetRules(ctx context.Context, input *GetRulesInput) (*GetRulesOutput, error)

	// UpdateRules replaces a game's rule sections
	UpdateRules(ctx context.Context, input *UpdateRulesInput) (*UpdateRulesOutput, error)

	// GetLibrary returns a user's library, most recently added first
	GetLibrary(ctx context.Context, input *GetLibraryInput) (*GetLibraryOutput, error)

	// AddToLibrary adds a game to a user's library
	AddToLibrary(ctx context.Context, input *AddToLibraryInput) (*AddToLibraryOutput, error)

	// RemoveFromLibrary removes a game from a user's library
	RemoveFromLibrary(ctx context.Context, input *RemoveFromLibraryInput) error

	// IsInLibrary reports whether a game is in a user's library
	IsInLibrary(ctx context.Context, input *IsInLibraryInput) (bool, error)
}
