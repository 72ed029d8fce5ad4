package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/samber/lo"
)

// StandardScoringName names the scoring system every hand-added game starts with
const StandardScoringName = "Standard"

// service implements the Service interface
type service struct {
	store    table.Store
	importer transfer.Service
	clock    clock.Clock
}

// New creates a new catalog service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Importer == nil {
		return nil, ErrNilImporter
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store:    cfg.Store,
		importer: cfg.Importer,
		clock:    cfg.Clock,
	}, nil
}

// AddGame creates a game with an empty rules document and the standard
// points scoring system, then adds it to the creator's library
func (s *service) AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	result := s.importer.ImportGame(ctx, &transfer.ImportGameInput{
		Game: &interchange.Game{
			Title:           title,
			Description:     strings.TrimSpace(input.Description),
			MinPlayers:      input.MinPlayers,
			MaxPlayers:      input.MaxPlayers,
			DurationMinutes: input.DurationMinutes,
			AgeMin:          input.AgeMin,
			Complexity:      input.Complexity,
			Rules:           json.RawMessage(`{"sections":[]}`),
			ScoringSystem: &interchange.ScoringSystem{
				Name:   StandardScoringName,
				Config: models.PointsConfig(),
			},
		},
		UserID:   input.UserID,
		IsPublic: input.IsPublic,
	})
	if !result.Success {
		return nil, fmt.Errorf("failed to add game: %s", result.Error)
	}

	return &AddGameOutput{GameID: result.GameID}, nil
}

// GetGame returns a single game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetGameOutput{Game: game}, nil
}

// ListPublicGames returns public games, newest first, optionally filtered by title
func (s *service) ListPublicGames(ctx context.Context, input *ListPublicGamesInput) (*ListPublicGamesOutput, error) {
	query := &table.Query{
		Table:   table.Games,
		Filters: []table.Filter{table.Eq("is_public", true)},
		OrderBy: []table.Order{{Column: "created_at", Descending: true}},
		Limit:   input.Limit,
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		query.Match = &table.Match{Column: "title", Substring: search}
	}

	rows, err := s.store.Select(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	games, err := table.DecodeAll[models.Game](rows)
	if err != nil {
		return nil, err
	}
	return &ListPublicGamesOutput{Games: games}, nil
}

// GetRules returns a game's rules, if it has any
func (s *service) GetRules(ctx context.Context, input *GetRulesInput) (*GetRulesOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	rules, err := s.getRules(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	return &GetRulesOutput{
		Game:     game,
		Rules:    rules,
		Sections: rules.Sections(),
		CanEdit:  game.IsCreatedBy(input.UserID),
	}, nil
}

// UpdateRules replaces a game's rule sections. Only the game's creator may
// edit; the rules version is left as it was.
func (s *service) UpdateRules(ctx context.Context, input *UpdateRulesInput) (*UpdateRulesOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if !game.IsCreatedBy(input.UserID) {
		return nil, ErrNotCreator
	}

	sections := input.Sections
	if sections == nil {
		sections = []models.RuleSection{}
	}
	content, err := json.Marshal(models.RulesDocument{Sections: sections})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rules: %w", err)
	}

	existing, err := s.getRules(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		row, err := s.store.Insert(ctx, &table.InsertInput{
			Table: table.GameRules,
			Row: table.Row{
				"game_id":  game.ID,
				"content":  json.RawMessage(content),
				"version":  interchange.DefaultRulesVersion,
				"language": interchange.DefaultRulesLanguage,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create rules: %w", err)
		}
		var rules models.GameRules
		if err := table.Decode(row, &rules); err != nil {
			return nil, err
		}
		return &UpdateRulesOutput{Rules: &rules}, nil
	}

	now := s.clock.Now()
	err = s.store.Update(ctx, &table.UpdateInput{
		Table:   table.GameRules,
		Filters: []table.Filter{table.Eq("id", existing.ID)},
		Patch: table.Row{
			"content":    json.RawMessage(content),
			"updated_at": table.Timestamp(now),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update rules: %w", err)
	}

	existing.Content = content
	existing.UpdatedAt = now
	return &UpdateRulesOutput{Rules: existing}, nil
}

// GetLibrary returns a user's library with each entry's game, most recently
// added first. Entries whose game can no longer be read are skipped.
func (s *service) GetLibrary(ctx context.Context, input *GetLibraryInput) (*GetLibraryOutput, error) {
	rows, err := s.store.Select(ctx, &table.Query{
		Table:   table.UserLibraries,
		Filters: []table.Filter{table.Eq("user_id", input.UserID)},
		OrderBy: []table.Order{{Column: "added_at", Descending: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get library: %w", err)
	}

	entries, err := table.DecodeAll[models.LibraryEntry](rows)
	if err != nil {
		return nil, err
	}

	items := make([]*LibraryItem, 0, len(entries))
	for _, entry := range entries {
		game, err := s.getGame(ctx, entry.GameID)
		if err != nil {
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, &LibraryItem{Entry: entry, Game: game})
	}

	return &GetLibraryOutput{Items: items}, nil
}

// AddToLibrary adds a game to a user's library
func (s *service) AddToLibrary(ctx context.Context, input *AddToLibraryInput) (*AddToLibraryOutput, error) {
	status := lo.Ternary(input.Status == "", models.OwnershipStatusOwned, input.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	inLibrary, err := s.IsInLibrary(ctx, &IsInLibraryInput{UserID: input.UserID, GameID: input.GameID})
	if err != nil {
		return nil, err
	}
	if inLibrary {
		return nil, ErrAlreadyInLibrary
	}

	row, err := s.store.Insert(ctx, &table.InsertInput{
		Table: table.UserLibraries,
		Row: table.Row{
			"user_id":          input.UserID,
			"game_id":          input.GameID,
			"ownership_status": string(status),
			"notes":            input.Notes,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add game to library: %w", err)
	}

	var entry models.LibraryEntry
	if err := table.Decode(row, &entry); err != nil {
		return nil, err
	}
	return &AddToLibraryOutput{Entry: &entry}, nil
}

// RemoveFromLibrary removes a game from a user's library
func (s *service) RemoveFromLibrary(ctx context.Context, input *RemoveFromLibraryInput) error {
	err := s.store.Delete(ctx, &table.DeleteInput{
		Table:   table.UserLibraries,
		Filters: libraryFilters(input.UserID, input.GameID),
	})
	if err != nil {
		return fmt.Errorf("failed to remove game from library: %w", err)
	}
	return nil
}

// IsInLibrary reports whether a game is in a user's library
func (s *service) IsInLibrary(ctx context.Context, input *IsInLibraryInput) (bool, error) {
	_, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.UserLibraries,
		Filters: libraryFilters(input.UserID, input.GameID),
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, table.ErrNotFound):
		return false, nil
	}
	return false, fmt.Errorf("failed to check library: %w", err)
}

func libraryFilters(userID, gameID string) []table.Filter {
	return []table.Filter{table.Eq("user_id", userID), table.Eq("game_id", gameID)}
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

// getRules returns nil rules when the game has none
func (s *service) getRules(ctx context.Context, gameID string) (*models.GameRules, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.GameRules,
		Filters: []table.Filter{table.Eq("game_id", gameID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	var rules models.GameRules
	if err := table.Decode(row, &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}
