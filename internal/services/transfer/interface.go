package transfer

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/SamSam-01/Gamebrary/internal/services/transfer Service

import "context"

// Service defines the interface for importing and exporting games
type Service interface {
	// ImportGame persists one interchange game with its rules, scoring system
	// and a library entry for the importing user
	ImportGame(ctx context.Context, input *ImportGameInput) *ImportResult

	// ImportFromJSON parses a single JSON game and imports it
	ImportFromJSON(ctx context.Context, input *ImportFromJSONInput) *ImportResult

	// ImportCSV parses CSV text and imports every row
	ImportCSV(ctx context.Context, input *ImportCSVInput) *ImportCSVOutput

	// ExportGame renders a persisted game as interchange JSON; false when the
	// game is absent or could not be read
	ExportGame(ctx context.Context, input *ExportGameInput) (*ExportGameOutput, bool)
}
