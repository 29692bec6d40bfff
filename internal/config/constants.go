package config

// Default paths and tunables for the catalog application
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./locallibrary.db"

	// DefaultMediaDir is the default directory for uploaded images
	DefaultMediaDir = "./media"

	// DefaultBooksPageSize is the number of books shown per list page
	DefaultBooksPageSize = 5
)
