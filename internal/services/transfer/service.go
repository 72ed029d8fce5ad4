package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	store       table.Store
	concurrency int
}

// New creates a new transfer service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = 1
	}
	if concurrency < 0 {
		return nil, ErrBadConcurrent
	}

	return &service{
		store:       cfg.Store,
		concurrency: concurrency,
	}, nil
}

// ImportGame persists one interchange game. Records are written in order and
// the first failure stops the import; earlier records are left in place.
func (s *service) ImportGame(ctx context.Context, input *ImportGameInput) *ImportResult {
	if input == nil || input.Game == nil {
		return &ImportResult{Error: interchange.ErrTitleRequired.Error()}
	}
	if err := input.Game.Validate(); err != nil {
		return &ImportResult{Error: err.Error()}
	}

	gameID, err := s.importGame(ctx, input.Game.WithDefaults(), input.UserID, input.IsPublic)
	if err != nil {
		log.Printf("Error importing game %q: %v", input.Game.Title, err)
		return &ImportResult{Error: err.Error()}
	}

	return &ImportResult{Success: true, GameID: gameID}
}

func (s *service) importGame(ctx context.Context, game interchange.Game, userID string, isPublic bool) (string, error) {
	// Create the game
	gameRow := table.Row{
		"title":            game.Title,
		"description":      game.Description,
		"min_players":      game.MinPlayers,
		"max_players":      game.MaxPlayers,
		"duration_minutes": game.DurationMinutes,
		"age_min":          game.AgeMin,
		"complexity":       game.Complexity,
		"is_public":        isPublic,
	}
	if userID != "" {
		gameRow["creator_id"] = userID
	}

	created, err := s.store.Insert(ctx, &table.InsertInput{Table: table.Games, Row: gameRow})
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	gameID := created.String("id")

	// Rules are stored verbatim
	if game.HasRules() {
		_, err := s.store.Insert(ctx, &table.InsertInput{
			Table: table.GameRules,
			Row: table.Row{
				"game_id":  gameID,
				"content":  game.Rules,
				"version":  interchange.DefaultRulesVersion,
				"language": interchange.DefaultRulesLanguage,
			},
		})
		if err != nil {
			return "", fmt.Errorf("failed to create rules: %w", err)
		}
	}

	if game.ScoringSystem != nil {
		scoringRow := table.Row{
			"game_id":      gameID,
			"name":         game.ScoringSystem.Name,
			"is_automated": game.ScoringSystem.IsAutomated,
		}
		if !game.ScoringSystem.Config.IsZero() {
			scoringRow["config"] = game.ScoringSystem.Config
		}

		if _, err := s.store.Insert(ctx, &table.InsertInput{Table: table.ScoringSystems, Row: scoringRow}); err != nil {
			return "", fmt.Errorf("failed to create scoring system: %w", err)
		}
	}

	// Add to the importer's library
	_, err = s.store.Insert(ctx, &table.InsertInput{
		Table: table.UserLibraries,
		Row: table.Row{
			"user_id":          userID,
			"game_id":          gameID,
			"ownership_status": string(models.OwnershipStatusOwned),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to add game to library: %w", err)
	}

	return gameID, nil
}

// ImportFromJSON parses a single JSON game and imports it
func (s *service) ImportFromJSON(ctx context.Context, input *ImportFromJSONInput) *ImportResult {
	game, err := interchange.ParseJSON([]byte(input.Data))
	if err != nil {
		return &ImportResult{Error: ErrInvalidJSON.Error()}
	}

	return s.ImportGame(ctx, &ImportGameInput{
		Game:     game,
		UserID:   input.UserID,
		IsPublic: input.IsPublic,
	})
}

// ImportCSV parses CSV text and imports every row through a bounded work
// queue. Each worker writes only its own slot of the results.
func (s *service) ImportCSV(ctx context.Context, input *ImportCSVInput) *ImportCSVOutput {
	games := interchange.ParseCSV(input.Text)
	if len(games) == 0 {
		return &ImportCSVOutput{Rows: []*RowResult{}, Error: ErrNoValidGames.Error()}
	}

	rows := make([]*RowResult, len(games))

	var group errgroup.Group
	group.SetLimit(s.concurrency)
	for i := range games {
		i := i
		group.Go(func() error {
			result := s.ImportGame(ctx, &ImportGameInput{
				Game:     &games[i],
				UserID:   input.UserID,
				IsPublic: input.IsPublic,
			})
			if !result.Success {
				log.Printf("CSV row %d (%s) failed: %s", i+1, games[i].Title, result.Error)
			}
			rows[i] = &RowResult{Row: i + 1, Title: games[i].Title, Result: result}
			return nil
		})
	}
	_ = group.Wait()

	return &ImportCSVOutput{
		Rows:      rows,
		Attempted: len(rows),
		Succeeded: lo.CountBy(rows, func(row *RowResult) bool {
			return row.Result.Success
		}),
	}
}

// ExportGame reads a game with its rules and scoring system and renders the
// interchange JSON
func (s *service) ExportGame(ctx context.Context, input *ExportGameInput) (*ExportGameOutput, bool) {
	if input == nil || input.GameID == "" {
		return nil, false
	}

	game, rules, scoring, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		if !errors.Is(err, ErrGameNotFound) {
			log.Printf("Error exporting game %s: %v", input.GameID, err)
		}
		return nil, false
	}

	document, err := interchange.FromRecords(game, rules, scoring).MarshalIndent()
	if err != nil {
		log.Printf("Error rendering game %s: %v", input.GameID, err)
		return nil, false
	}

	return &ExportGameOutput{Title: game.Title, JSON: document}, true
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, *models.GameRules, *models.ScoringSystem, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.Games,
		Filters: []table.Filter{table.Eq("id", gameID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, nil, nil, ErrGameNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get game: %w", err)
	}
	var game models.Game
	if err := table.Decode(row, &game); err != nil {
		return nil, nil, nil, err
	}

	var rules *models.GameRules
	row, err = s.store.SelectOne(ctx, &table.Query{
		Table:   table.GameRules,
		Filters: []table.Filter{table.Eq("game_id", gameID)},
	})
	switch {
	case err == nil:
		rules = &models.GameRules{}
		if err := table.Decode(row, rules); err != nil {
			return nil, nil, nil, err
		}
	case !errors.Is(err, table.ErrNotFound):
		return nil, nil, nil, fmt.Errorf("failed to get rules: %w", err)
	}

	var scoring *models.ScoringSystem
	row, err = s.store.SelectOne(ctx, &table.Query{
		Table:   table.ScoringSystems,
		Filters: []table.Filter{table.Eq("game_id", gameID)},
	})
	switch {
	case err == nil:
		scoring = &models.ScoringSystem{}
		if err := table.Decode(row, scoring); err != nil {
			return nil, nil, nil, err
		}
	case !errors.Is(err, table.ErrNotFound):
		return nil, nil, nil, fmt.Errorf("failed to get scoring system: %w", err)
	}

	return &game, rules, scoring, nil
}
