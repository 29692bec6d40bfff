package genres

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "test_genres.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Genre{},
		&entities.Language{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db), db
}

func TestCreateGenre(t *testing.T) {
	repo, _ := setupTestDB(t)

	genre, err := repo.CreateGenre("Science Fiction")

	require.NoError(t, err)
	assert.NotZero(t, genre.ID)
	assert.Equal(t, "Science Fiction", genre.Name)
}

func TestCreateGenre_EmptyName(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.CreateGenre("")

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
}

func TestCreateGenre_DuplicateName(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.CreateGenre("Fantasy")
	require.NoError(t, err)

	_, err = repo.CreateGenre("Fantasy")

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
}

func TestGetGenreByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetGenreByID(404)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestGetAllGenres_OrderedByName(t *testing.T) {
	repo, _ := setupTestDB(t)
	for _, name := range []string{"Satire", "Biography", "Fantasy"} {
		_, err := repo.CreateGenre(name)
		require.NoError(t, err)
	}

	genres, err := repo.GetAllGenres()

	require.NoError(t, err)
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Biography", "Fantasy", "Satire"}, names)
}

func TestUpdateGenre(t *testing.T) {
	repo, _ := setupTestDB(t)

	genre, err := repo.CreateGenre("Sci Fi")
	require.NoError(t, err)

	updated, err := repo.UpdateGenre(genre.ID, "Science Fiction")
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", updated.Name)
}

func TestUpdateGenre_KeepsOwnName(t *testing.T) {
	repo, _ := setupTestDB(t)

	genre, err := repo.CreateGenre("Fantasy")
	require.NoError(t, err)

	// Renaming a genre to its current name is not a uniqueness conflict.
	_, err = repo.UpdateGenre(genre.ID, "Fantasy")
	require.NoError(t, err)
}

func TestUpdateGenre_DuplicateName(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.CreateGenre("Fantasy")
	require.NoError(t, err)
	genre, err := repo.CreateGenre("Satire")
	require.NoError(t, err)

	_, err = repo.UpdateGenre(genre.ID, "Fantasy")

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
}

func TestDeleteGenre_KeepsBooks(t *testing.T) {
	repo, db := setupTestDB(t)

	genre, err := repo.CreateGenre("Fantasy")
	require.NoError(t, err)

	book := entities.Book{Title: "Earthsea", Summary: "s", Genres: []entities.Genre{*genre}}
	require.NoError(t, db.Create(&book).Error)

	require.NoError(t, repo.DeleteGenre(genre.ID))

	var reloaded entities.Book
	require.NoError(t, db.Preload("Genres").First(&reloaded, book.ID).Error)
	assert.Empty(t, reloaded.Genres)

	var joinRows int64
	require.NoError(t, db.Table("book_genres").Where("genre_id = ?", genre.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)
}

func TestDeleteGenre_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.DeleteGenre(404)

	assert.ErrorIs(t, err, database.ErrNotFound)
}
