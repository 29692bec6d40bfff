// Package books provides database operations for the book catalog,
// including ordered listings, relation-scoped listings and keyword search.
//
// This package implements the BookStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"sort"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/validator"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(book *entities.Book) error {
	v := validator.New()
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(validator.MaxChars(book.Title, 200), "title", "must not be more than 200 characters long")
	v.Check(book.Summary != "", "summary", "must be provided")
	v.Check(validator.MaxChars(book.Summary, 1000), "summary", "must not be more than 1000 characters long")
	v.Check(book.ISBN == "" || utf8.RuneCountInString(book.ISBN) == 13, "isbn", "must be exactly 13 characters long")
	v.Check(validator.MaxChars(book.Edition, 20), "edition", "must not be more than 20 characters long")
	v.Check(validator.MaxChars(book.BuyOnlineURL, 200), "buy_online_url", "must not be more than 200 characters long")
	if !v.Valid() {
		return &entities.ValidationError{Fields: v.Errors}
	}
	return nil
}

// withRelations preloads the associations rendered on book pages.
func (r *Repository) withRelations() *gorm.DB {
	return r.db.Preload("Author").Preload("Language").Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.name ASC")
	})
}

// resolveGenres verifies that every referenced genre exists, returning the
// loaded rows so associations are saved against persisted records.
func (r *Repository) resolveGenres(ids []uint) ([]entities.Genre, error) {
	genres := make([]entities.Genre, 0, len(ids))
	for _, id := range ids {
		var genre entities.Genre
		if err := r.db.First(&genre, id).Error; err != nil {
			return nil, database.WrapNotFound(err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

// CreateBook creates a new book and its genre associations. genreIDs may be
// empty, although a book without genres is not recommended.
func (r *Repository) CreateBook(book *entities.Book, genreIDs []uint) error {
	if err := validate(book); err != nil {
		return err
	}
	if book.AuthorID != nil {
		var author entities.Author
		if err := r.db.First(&author, *book.AuthorID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	if book.LanguageID != nil {
		var language entities.Language
		if err := r.db.First(&language, *book.LanguageID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	genres, err := r.resolveGenres(genreIDs)
	if err != nil {
		return err
	}
	book.Genres = genres
	if book.Image == "" {
		book.Image = entities.DefaultBookImage
	}
	return r.db.Create(book).Error
}

// GetBookByID retrieves a book by its ID with all related data.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.withRelations().First(&book, id).Error; err != nil {
		return nil, database.WrapNotFound(err)
	}
	return &book, nil
}

// GetAllBooks retrieves every book ordered by title.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.withRelations().Order("title ASC").Find(&books).Error
	return books, err
}

// ListBooks retrieves one page of books ordered by title, along with the
// total number of books. Pages are 1-based; pageSize must be positive.
func (r *Repository) ListBooks(page, pageSize int) ([]entities.Book, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	var books []entities.Book
	err := r.withRelations().
		Order("title ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&books).Error
	return books, total, err
}

// GetBooksByGenre retrieves the genre and all books carrying it, ordered by
// title. Returns ErrNotFound when the genre does not exist.
func (r *Repository) GetBooksByGenre(genreID uint) (*entities.Genre, []entities.Book, error) {
	var genre entities.Genre
	if err := r.db.First(&genre, genreID).Error; err != nil {
		return nil, nil, database.WrapNotFound(err)
	}

	var books []entities.Book
	err := r.withRelations().
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error
	if err != nil {
		return nil, nil, err
	}
	return &genre, books, nil
}

// GetBooksByLanguage retrieves the language and all books written in it,
// ordered by title. Returns ErrNotFound when the language does not exist.
func (r *Repository) GetBooksByLanguage(languageID uint) (*entities.Language, []entities.Book, error) {
	var language entities.Language
	if err := r.db.First(&language, languageID).Error; err != nil {
		return nil, nil, database.WrapNotFound(err)
	}

	var books []entities.Book
	err := r.withRelations().
		Where("language_id = ?", languageID).
		Order("title ASC").
		Find(&books).Error
	if err != nil {
		return nil, nil, err
	}
	return &language, books, nil
}

// likeEscaper neutralizes the LIKE metacharacters so search tokens always
// match literally. Must stay in sync with the ESCAPE clause below.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchBooks runs a keyword search over book titles and summaries.
//
// The query is split on whitespace; each token is matched case-insensitively
// as a literal substring of the title or the summary, and the result is the
// de-duplicated union of all per-token matches. An empty or all-whitespace
// query returns no results. Output order is title ascending, so repeated
// searches are deterministic.
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return []entities.Book{}, nil
	}

	seen := make(map[uint]bool)
	results := []entities.Book{}
	for _, token := range tokens {
		pattern := "%" + likeEscaper.Replace(token) + "%"
		var matches []entities.Book
		err := r.withRelations().
			Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(summary) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
			Find(&matches).Error
		if err != nil {
			return nil, err
		}
		for _, book := range matches {
			if !seen[book.ID] {
				seen[book.ID] = true
				results = append(results, book)
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Title < results[j].Title
	})
	return results, nil
}

// UpdateBook saves changes to an existing book, replacing its genre set.
// Author, language and genre references must resolve, as on create.
func (r *Repository) UpdateBook(book *entities.Book, genreIDs []uint) error {
	if _, err := r.GetBookByID(book.ID); err != nil {
		return err
	}
	if err := validate(book); err != nil {
		return err
	}
	if book.AuthorID != nil {
		var author entities.Author
		if err := r.db.First(&author, *book.AuthorID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	if book.LanguageID != nil {
		var language entities.Language
		if err := r.db.First(&language, *book.LanguageID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	genres, err := r.resolveGenres(genreIDs)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "CreatedAt").Save(book).Error; err != nil {
			return err
		}
		return tx.Model(book).Association("Genres").Replace(genres)
	})
}

// SetBookImage records the stored cover image path for a book.
func (r *Repository) SetBookImage(id uint, path string) error {
	book, err := r.GetBookByID(id)
	if err != nil {
		return err
	}
	return r.db.Model(book).Update("image", path).Error
}

// DeleteBook removes a book. Its instances are kept with their book
// reference cleared (set-null on delete); genre associations are removed.
func (r *Repository) DeleteBook(id uint) error {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return database.WrapNotFound(err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.BookInstance{}).Where("book_id = ?", id).Update("book_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM book_genres WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}
