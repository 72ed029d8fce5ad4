package messaging

import (
	"math/rand"

	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
)

// ErrorKind is the taxonomy surfaces map errors onto
type ErrorKind string

const (
	// ErrorKindValidation is bad input or a forbidden action
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindNotFound is a missing record
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindPersistence is any other failure, usually the store
	ErrorKindPersistence ErrorKind = "persistence"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Rand picks flavor lines; seeded from the clock when nil
	Rand *rand.Rand
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Kind is the error's class
	Kind ErrorKind

	// Message is safe to show to the user
	Message string
}

// GetImportMessageInput contains parameters for describing an import
type GetImportMessageInput struct {
	// Title is the imported game's title, if known
	Title string

	Result *transfer.ImportResult
}

// GetImportMessageOutput contains the import description
type GetImportMessageOutput struct {
	Title   string
	Message string

	// Flavor is an optional light-hearted line
	Flavor string

	Success bool
}

// GetBulkImportMessageInput contains parameters for describing a CSV import
type GetBulkImportMessageInput struct {
	Output *transfer.ImportCSVOutput
}

// GetBulkImportMessageOutput contains the CSV import description
type GetBulkImportMessageOutput struct {
	Title string

	// Summary reads "N of M games imported"
	Summary string

	// Failures holds one line per failed row
	Failures []string

	Flavor string
}
