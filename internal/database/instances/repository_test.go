package instances

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "test_instances.db")

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

func TestCreateInstance_GeneratesUUID(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "Penguin Classics, 2006"}
	require.NoError(t, repo.CreateInstance(instance))

	_, err := uuid.Parse(instance.ID)
	assert.NoError(t, err, "instance ID must be a valid UUID, got %q", instance.ID)
}

func TestCreateInstance_DefaultStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "First Edition"}
	require.NoError(t, repo.CreateInstance(instance))

	reloaded, err := repo.GetInstanceByID(instance.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusMaintenance, reloaded.Status)
}

func TestCreateInstance_Validation(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateInstance(&entities.BookInstance{Imprint: ""})

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "imprint")
}

func TestCreateInstance_InvalidStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateInstance(&entities.BookInstance{Imprint: "X", Status: "lost"})

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}

func TestCreateInstance_UnknownBook(t *testing.T) {
	repo, _ := setupTestDB(t)

	missing := uint(404)
	err := repo.CreateInstance(&entities.BookInstance{Imprint: "X", BookID: &missing})

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestGetInstanceByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetInstanceByID(uuid.NewString())

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestGetAllInstances_OrderedByDueBack(t *testing.T) {
	repo, _ := setupTestDB(t)

	later := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	a := &entities.BookInstance{Imprint: "A", DueBack: &later}
	b := &entities.BookInstance{Imprint: "B", DueBack: &sooner}
	require.NoError(t, repo.CreateInstance(a))
	require.NoError(t, repo.CreateInstance(b))

	instances, err := repo.GetAllInstances()

	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "B", instances[0].Imprint)
	assert.Equal(t, "A", instances[1].Imprint)
}

func TestGetInstancesByStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	available := &entities.BookInstance{Imprint: "A", Status: entities.StatusAvailable}
	onLoan := &entities.BookInstance{Imprint: "B", Status: entities.StatusOnLoan}
	require.NoError(t, repo.CreateInstance(available))
	require.NoError(t, repo.CreateInstance(onLoan))

	instances, err := repo.GetInstancesByStatus(entities.StatusAvailable)

	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "A", instances[0].Imprint)
}

func TestUpdateInstance(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "X", Status: entities.StatusAvailable}
	require.NoError(t, repo.CreateInstance(instance))

	instance.Status = entities.StatusOnLoan
	require.NoError(t, repo.UpdateInstance(instance))

	reloaded, err := repo.GetInstanceByID(instance.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOnLoan, reloaded.Status)
}

func TestUpdateInstance_OmittedStatusKeepsStored(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "X", Status: entities.StatusAvailable}
	require.NoError(t, repo.CreateInstance(instance))

	// A payload without a status must not clear the stored one.
	updated := &entities.BookInstance{ID: instance.ID, Imprint: "Y"}
	require.NoError(t, repo.UpdateInstance(updated))

	reloaded, err := repo.GetInstanceByID(instance.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusAvailable, reloaded.Status)
	assert.Equal(t, "Y", reloaded.Imprint)
	assert.False(t, reloaded.CreatedAt.IsZero())
}

func TestUpdateInstance_RejectsInvalidStatus(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "X"}
	require.NoError(t, repo.CreateInstance(instance))

	instance.Status = "lost"
	err := repo.UpdateInstance(instance)

	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}

func TestDeleteInstance(t *testing.T) {
	repo, _ := setupTestDB(t)

	instance := &entities.BookInstance{Imprint: "X"}
	require.NoError(t, repo.CreateInstance(instance))

	require.NoError(t, repo.DeleteInstance(instance.ID))

	_, err := repo.GetInstanceByID(instance.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteInstance_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.DeleteInstance(uuid.NewString())

	assert.ErrorIs(t, err, database.ErrNotFound)
}
