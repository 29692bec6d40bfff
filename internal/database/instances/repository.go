// Package instances provides database operations for physical book copies.
//
// This package implements the InstanceStore interface defined in
// internal/http/stores.go. Instance identifiers are UUIDs generated when
// the row is created.
package instances

import (
	"gorm.io/gorm"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
	"github.com/souravramos/locallibrary/internal/validator"
)

// Repository handles all book instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new book instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(instance *entities.BookInstance) error {
	v := validator.New()
	v.Check(instance.Imprint != "", "imprint", "must be provided")
	v.Check(validator.MaxChars(instance.Imprint, 200), "imprint", "must not be more than 200 characters long")
	v.Check(instance.Status == "" || instance.Status.Valid(), "status", "must be one of maintenance, on_loan, available, reserved")
	if !v.Valid() {
		return &entities.ValidationError{Fields: v.Errors}
	}
	return nil
}

// CreateInstance creates a new copy of a book. The identifier is generated
// on insert; status defaults to maintenance.
func (r *Repository) CreateInstance(instance *entities.BookInstance) error {
	if err := validate(instance); err != nil {
		return err
	}
	if instance.BookID != nil {
		var book entities.Book
		if err := r.db.First(&book, *instance.BookID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	return r.db.Create(instance).Error
}

// GetInstanceByID retrieves a copy by its UUID.
func (r *Repository) GetInstanceByID(id string) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	if err := r.db.Preload("Book").Where("id = ?", id).First(&instance).Error; err != nil {
		return nil, database.WrapNotFound(err)
	}
	return &instance, nil
}

// GetAllInstances retrieves all copies ordered by due-back date.
func (r *Repository) GetAllInstances() ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Preload("Book").Order("due_back ASC").Find(&instances).Error
	return instances, err
}

// GetInstancesByStatus retrieves copies in a given status, ordered by
// due-back date.
func (r *Repository) GetInstancesByStatus(status entities.LoanStatus) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Preload("Book").Where("status = ?", status).Order("due_back ASC").Find(&instances).Error
	return instances, err
}

// UpdateInstance saves changes to an existing copy. An omitted status keeps
// the stored one; the empty string never reaches the row.
func (r *Repository) UpdateInstance(instance *entities.BookInstance) error {
	existing, err := r.GetInstanceByID(instance.ID)
	if err != nil {
		return err
	}
	if instance.Status == "" {
		instance.Status = existing.Status
	}
	if err := validate(instance); err != nil {
		return err
	}
	if instance.BookID != nil {
		var book entities.Book
		if err := r.db.First(&book, *instance.BookID).Error; err != nil {
			return database.WrapNotFound(err)
		}
	}
	return r.db.Omit("CreatedAt").Save(instance).Error
}

// DeleteInstance removes a copy from the catalog.
func (r *Repository) DeleteInstance(id string) error {
	var instance entities.BookInstance
	if err := r.db.Where("id = ?", id).First(&instance).Error; err != nil {
		return database.WrapNotFound(err)
	}
	return r.db.Where("id = ?", id).Delete(&entities.BookInstance{}).Error
}
