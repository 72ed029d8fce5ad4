package catalog

// CatalogError is a custom error type for catalog-related errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     CatalogError = "game not found"
	ErrTitleRequired    CatalogError = "title is required"
	ErrNotCreator       CatalogError = "only the game's creator can edit its rules"
	ErrInvalidStatus    CatalogError = "invalid ownership status"
	ErrAlreadyInLibrary CatalogError = "game already in library"
	ErrNilConfig        CatalogError = "config cannot be nil"
	ErrNilStore         CatalogError = "table store cannot be nil"
	ErrNilImporter      CatalogError = "importer cannot be nil"
	ErrNilClock         CatalogError = "clock cannot be nil"
)
