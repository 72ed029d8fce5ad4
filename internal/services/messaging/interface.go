package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/SamSam-01/Gamebrary/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage classifies an error and returns a user-friendly message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetImportMessage describes the outcome of a single game import
	GetImportMessage(ctx context.Context, input *GetImportMessageInput) (*GetImportMessageOutput, error)

	// GetBulkImportMessage describes the outcome of a CSV import
	GetBulkImportMessage(ctx context.Context, input *GetBulkImportMessageInput) (*GetBulkImportMessageOutput, error)
}
