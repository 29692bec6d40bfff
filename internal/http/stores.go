package http

import (
	"io"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
)

// This file consolidates all store interface definitions used by HTTP
// controllers. Each controller declares the slice of the data layer it
// needs; the repositories under internal/database implement them.

// BookStore provides access to the book catalog, including search and
// relation-scoped listings.
type BookStore interface {
	CreateBook(book *entities.Book, genreIDs []uint) error
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	ListBooks(page, pageSize int) ([]entities.Book, int64, error)
	GetBooksByGenre(genreID uint) (*entities.Genre, []entities.Book, error)
	GetBooksByLanguage(languageID uint) (*entities.Language, []entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	UpdateBook(book *entities.Book, genreIDs []uint) error
	SetBookImage(id uint, path string) error
	DeleteBook(id uint) error
}

// BookSearcher is the read-only slice of BookStore the home page needs.
type BookSearcher interface {
	SearchBooks(query string) ([]entities.Book, error)
}

// AuthorStore provides access to authors.
type AuthorStore interface {
	CreateAuthor(author *entities.Author) error
	GetAuthorByID(id uint) (*entities.Author, error)
	GetAllAuthors() ([]entities.Author, error)
	UpdateAuthor(author *entities.Author) error
	SetAuthorImage(id uint, path string) error
	DeleteAuthor(id uint) error
}

// GenreStore provides access to genres.
type GenreStore interface {
	CreateGenre(name string) (*entities.Genre, error)
	GetGenreByID(id uint) (*entities.Genre, error)
	GetAllGenres() ([]entities.Genre, error)
	UpdateGenre(id uint, name string) (*entities.Genre, error)
	DeleteGenre(id uint) error
}

// LanguageStore provides access to languages.
type LanguageStore interface {
	CreateLanguage(name string) (*entities.Language, error)
	GetLanguageByID(id uint) (*entities.Language, error)
	GetAllLanguages() ([]entities.Language, error)
	UpdateLanguage(id uint, name string) (*entities.Language, error)
	DeleteLanguage(id uint) error
}

// InstanceStore provides access to physical book copies.
type InstanceStore interface {
	CreateInstance(instance *entities.BookInstance) error
	GetInstanceByID(id string) (*entities.BookInstance, error)
	GetAllInstances() ([]entities.BookInstance, error)
	GetInstancesByStatus(status entities.LoanStatus) ([]entities.BookInstance, error)
	UpdateInstance(instance *entities.BookInstance) error
	DeleteInstance(id string) error
}

// CountsProvider computes the home page aggregates.
type CountsProvider interface {
	GetCatalogCounts() (database.CatalogCounts, error)
}

// ImageStore persists uploaded images and normalizes them on save.
type ImageStore interface {
	SaveImage(kind, id, uploadName string, src io.Reader) (string, error)
	Path(filename string) string
}
