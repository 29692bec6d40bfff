// Package languages provides database operations for language management.
//
// This package implements the LanguageStore interface defined in
// internal/http/stores.go.
package languages

import (
	"gorm.io/gorm"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/validator"
)

// Repository handles all language database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new languages repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(name string) error {
	v := validator.New()
	v.Check(name != "", "name", "must be provided")
	v.Check(validator.MaxChars(name, 200), "name", "must not be more than 200 characters long")
	if !v.Valid() {
		return &entities.ValidationError{Fields: v.Errors}
	}
	return nil
}

// CreateLanguage creates a new language.
func (r *Repository) CreateLanguage(name string) (*entities.Language, error) {
	if err := validate(name); err != nil {
		return nil, err
	}
	language := &entities.Language{Name: name}
	if err := r.db.Create(language).Error; err != nil {
		return nil, err
	}
	return language, nil
}

// GetLanguageByID retrieves a language by ID.
func (r *Repository) GetLanguageByID(id uint) (*entities.Language, error) {
	var language entities.Language
	if err := r.db.First(&language, id).Error; err != nil {
		return nil, database.WrapNotFound(err)
	}
	return &language, nil
}

// GetAllLanguages retrieves all languages ordered by name.
func (r *Repository) GetAllLanguages() ([]entities.Language, error) {
	var languages []entities.Language
	err := r.db.Order("name ASC").Find(&languages).Error
	return languages, err
}

// UpdateLanguage renames an existing language.
func (r *Repository) UpdateLanguage(id uint, name string) (*entities.Language, error) {
	language, err := r.GetLanguageByID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(name); err != nil {
		return nil, err
	}
	language.Name = name
	if err := r.db.Save(language).Error; err != nil {
		return nil, err
	}
	return language, nil
}

// DeleteLanguage removes a language. Books referencing it keep existing
// with their language cleared (set-null on delete).
func (r *Repository) DeleteLanguage(id uint) error {
	var language entities.Language
	if err := r.db.First(&language, id).Error; err != nil {
		return database.WrapNotFound(err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Book{}).Where("language_id = ?", id).Update("language_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Language{}, id).Error
	})
}
