package transfer

import (
	"fmt"

	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
)

// Config holds configuration for the transfer service
type Config struct {
	// Store persists games and their related records
	Store table.Store

	// Concurrency bounds how many CSV rows import at once; 0 means 1
	Concurrency int
}

// ImportResult reports the outcome of importing one game
type ImportResult struct {
	// Success indicates every record was written
	Success bool

	// GameID is the created game, set on success
	GameID string

	// Error is a human readable failure message
	Error string
}

// ImportGameInput contains parameters for importing a game
type ImportGameInput struct {
	// Game is the interchange game to persist
	Game *interchange.Game

	// UserID is the importing user, recorded as creator and library owner
	UserID string

	// IsPublic makes the game visible to every user
	IsPublic bool
}

// ImportFromJSONInput contains parameters for importing a JSON game
type ImportFromJSONInput struct {
	Data     string
	UserID   string
	IsPublic bool
}

// ImportCSVInput contains parameters for a bulk CSV import
type ImportCSVInput struct {
	Text     string
	UserID   string
	IsPublic bool
}

// RowResult is the outcome for one parsed CSV row
type RowResult struct {
	// Row is the 1-based position among the parsed games
	Row int

	// Title is the game title from the row
	Title string

	// Result is the import outcome
	Result *ImportResult
}

// ImportCSVOutput contains the result of a bulk import
type ImportCSVOutput struct {
	// Rows holds one result per parsed game, in input order
	Rows []*RowResult

	// Attempted is the number of games parsed
	Attempted int

	// Succeeded is the number of games imported
	Succeeded int

	// Error is set when nothing could be attempted
	Error string
}

// Summary renders the outcome as "<succeeded> of <attempted>"
func (o *ImportCSVOutput) Summary() string {
	return fmt.Sprintf("%d of %d", o.Succeeded, o.Attempted)
}

// Failed returns the rows that did not import
func (o *ImportCSVOutput) Failed() []*RowResult {
	failed := make([]*RowResult, 0, o.Attempted-o.Succeeded)
	for _, row := range o.Rows {
		if !row.Result.Success {
			failed = append(failed, row)
		}
	}
	return failed
}

// ExportGameInput contains parameters for exporting a game
type ExportGameInput struct {
	GameID string
}

// ExportGameOutput contains an exported game
type ExportGameOutput struct {
	// Title is the exported game's title
	Title string

	// JSON is the two-space indented interchange document
	JSON string
}
