package transfer

// TransferError is a custom error type for import and export errors
type TransferError string

// Error implements the error interface
func (e TransferError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidJSON   TransferError = "Invalid JSON format"
	ErrNoValidGames  TransferError = "No valid games found in CSV"
	ErrGameNotFound  TransferError = "game not found"
	ErrNilConfig     TransferError = "config cannot be nil"
	ErrNilStore      TransferError = "table store cannot be nil"
	ErrBadConcurrent TransferError = "import concurrency must be at least 1"
)
