package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravramos/locallibrary/internal/entities"
)

func setupTestDatabase(t *testing.T) *Database {
	dbPath := filepath.Join(t.TempDir(), "test_catalog.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestNewDatabase_Migrates(t *testing.T) {
	db := setupTestDatabase(t)

	for _, table := range []string{"genres", "languages", "authors", "books", "book_instances", "book_genres"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "expected table %q", table)
	}
}

func TestGetCatalogCounts_EmptyCatalog(t *testing.T) {
	db := setupTestDatabase(t)

	counts, err := db.GetCatalogCounts()

	require.NoError(t, err)
	assert.Equal(t, CatalogCounts{}, counts)
}

func TestGetCatalogCounts(t *testing.T) {
	db := setupTestDatabase(t)

	require.NoError(t, db.DB.Create(&entities.Genre{Name: "Fantasy"}).Error)
	require.NoError(t, db.DB.Create(&entities.Language{Name: "English"}).Error)
	require.NoError(t, db.DB.Create(&entities.Language{Name: "Marathi"}).Error)

	authors := []entities.Author{
		{FirstName: "Ursula", LastName: "Le Guin"},
		{FirstName: "वपु", LastName: "काळे"},
	}
	require.NoError(t, db.DB.Create(&authors).Error)

	book := entities.Book{Title: "Earthsea", Summary: "s"}
	require.NoError(t, db.DB.Create(&book).Error)

	instances := []entities.BookInstance{
		{Imprint: "a", Status: entities.StatusAvailable},
		{Imprint: "b", Status: entities.StatusAvailable},
		{Imprint: "c", Status: entities.StatusOnLoan},
	}
	for i := range instances {
		require.NoError(t, db.DB.Create(&instances[i]).Error)
	}

	counts, err := db.GetCatalogCounts()

	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Books)
	assert.EqualValues(t, 3, counts.Instances)
	assert.EqualValues(t, 2, counts.InstancesAvailable)
	assert.EqualValues(t, 2, counts.Authors)
	assert.EqualValues(t, 1, counts.Genres)
	assert.EqualValues(t, 2, counts.Languages)
	assert.EqualValues(t, 1, counts.FeaturedAuthors)
}
