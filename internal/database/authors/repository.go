// Package authors provides database operations for author management.
//
// This package implements the AuthorStore interface defined in
// internal/http/stores.go.
package authors

import (
	"gorm.io/gorm"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/validator"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(author *entities.Author) error {
	v := validator.New()
	v.Check(author.FirstName != "", "first_name", "must be provided")
	v.Check(validator.MaxChars(author.FirstName, 100), "first_name", "must not be more than 100 characters long")
	v.Check(author.LastName != "", "last_name", "must be provided")
	v.Check(validator.MaxChars(author.LastName, 100), "last_name", "must not be more than 100 characters long")
	v.Check(validator.MaxChars(author.Details, 2000), "details", "must not be more than 2000 characters long")
	if author.DateOfBirth != nil && author.DateOfDeath != nil {
		v.Check(!author.DateOfDeath.Before(*author.DateOfBirth), "date_of_death", "must not be before date of birth")
	}
	if !v.Valid() {
		return &entities.ValidationError{Fields: v.Errors}
	}
	return nil
}

// CreateAuthor creates a new author.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	if err := validate(author); err != nil {
		return err
	}
	return r.db.Create(author).Error
}

// GetAuthorByID retrieves an author by ID.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, database.WrapNotFound(err)
	}
	return &author, nil
}

// GetAllAuthors retrieves all authors ordered by last name.
func (r *Repository) GetAllAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("last_name ASC").Find(&authors).Error
	return authors, err
}

// UpdateAuthor saves changes to an existing author.
func (r *Repository) UpdateAuthor(author *entities.Author) error {
	if _, err := r.GetAuthorByID(author.ID); err != nil {
		return err
	}
	if err := validate(author); err != nil {
		return err
	}
	return r.db.Omit("CreatedAt").Save(author).Error
}

// SetAuthorImage records the stored image path for an author.
func (r *Repository) SetAuthorImage(id uint, path string) error {
	author, err := r.GetAuthorByID(id)
	if err != nil {
		return err
	}
	return r.db.Model(author).Update("image", path).Error
}

// DeleteAuthor removes an author. Books referencing the author are kept
// with their author cleared (set-null on delete).
func (r *Repository) DeleteAuthor(id uint) error {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return database.WrapNotFound(err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Book{}).Where("author_id = ?", id).Update("author_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Author{}, id).Error
	})
}
