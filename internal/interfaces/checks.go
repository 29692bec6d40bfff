package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/database/authors"
	"github.com/souravramos/locallibrary/internal/database/books"
	"github.com/souravramos/locallibrary/internal/database/genres"
	"github.com/souravramos/locallibrary/internal/database/instances"
	"github.com/souravramos/locallibrary/internal/database/languages"
	"github.com/souravramos/locallibrary/internal/http"
	"github.com/souravramos/locallibrary/internal/media"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ http.BookSearcher = (*books.Repository)(nil)
var _ http.AuthorStore = (*authors.Repository)(nil)
var _ http.GenreStore = (*genres.Repository)(nil)
var _ http.LanguageStore = (*languages.Repository)(nil)
var _ http.InstanceStore = (*instances.Repository)(nil)
var _ http.CountsProvider = (*database.Database)(nil)

// =============================================================================
// Media
// =============================================================================

var _ http.ImageStore = (*media.Store)(nil)
