// Package genres provides database operations for genre management.
//
// This package implements the GenreStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := genres.NewRepository(db)
//	genre, err := repo.CreateGenre("Science Fiction")
package genres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/validator"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) validate(name string, excludeID uint) error {
	v := validator.New()
	v.Check(name != "", "name", "must be provided")
	v.Check(validator.MaxChars(name, 200), "name", "must not be more than 200 characters long")

	if v.Valid() {
		// Genre names are unique across the catalog.
		var existing entities.Genre
		err := r.db.Where("name = ? AND id <> ?", name, excludeID).First(&existing).Error
		if err == nil {
			v.AddError("name", "a genre with this name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check genre uniqueness: %w", err)
		}
	}

	if !v.Valid() {
		return &entities.ValidationError{Fields: v.Errors}
	}
	return nil
}

// CreateGenre creates a new genre with a unique, non-empty name.
func (r *Repository) CreateGenre(name string) (*entities.Genre, error) {
	if err := r.validate(name, 0); err != nil {
		return nil, err
	}
	genre := &entities.Genre{Name: name}
	if err := r.db.Create(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// GetGenreByID retrieves a genre by ID.
func (r *Repository) GetGenreByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return nil, database.WrapNotFound(err)
	}
	return &genre, nil
}

// GetAllGenres retrieves all genres ordered by name.
func (r *Repository) GetAllGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// UpdateGenre renames an existing genre.
func (r *Repository) UpdateGenre(id uint, name string) (*entities.Genre, error) {
	genre, err := r.GetGenreByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.validate(name, id); err != nil {
		return nil, err
	}
	genre.Name = name
	if err := r.db.Save(genre).Error; err != nil {
		return nil, err
	}
	return genre, nil
}

// DeleteGenre removes a genre and its book associations. Books that carried
// the genre are kept; only the join rows are removed.
func (r *Repository) DeleteGenre(id uint) error {
	var genre entities.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return database.WrapNotFound(err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Genre{}, id).Error
	})
}
