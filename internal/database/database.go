package database

import (
	"database/sql"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/souravramos/locallibrary/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Genre{},
		&entities.Language{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

// SQLDB exposes the underlying *sql.DB, used by the session store.
func (d *Database) SQLDB() (*sql.DB, error) {
	return d.DB.DB()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// featuredAuthorSubstring is the first-name fragment counted on the home
// page ("वपु", after the Marathi author V. P. Kale).
const featuredAuthorSubstring = "वपु"

// CatalogCounts holds the scalar aggregates rendered on the home page.
type CatalogCounts struct {
	Books              int64 `json:"books"`
	Instances          int64 `json:"instances"`
	InstancesAvailable int64 `json:"instances_available"`
	Authors            int64 `json:"authors"`
	Genres             int64 `json:"genres"`
	Languages          int64 `json:"languages"`
	FeaturedAuthors    int64 `json:"featured_authors"`
}

// GetCatalogCounts computes the home page aggregates over the catalog tables.
func (d *Database) GetCatalogCounts() (CatalogCounts, error) {
	var counts CatalogCounts

	type countQuery struct {
		dest  *int64
		query *gorm.DB
	}

	queries := []countQuery{
		{&counts.Books, d.DB.Model(&entities.Book{})},
		{&counts.Instances, d.DB.Model(&entities.BookInstance{})},
		{&counts.InstancesAvailable, d.DB.Model(&entities.BookInstance{}).Where("status = ?", entities.StatusAvailable)},
		{&counts.Authors, d.DB.Model(&entities.Author{})},
		{&counts.Genres, d.DB.Model(&entities.Genre{})},
		{&counts.Languages, d.DB.Model(&entities.Language{})},
		{&counts.FeaturedAuthors, d.DB.Model(&entities.Author{}).Where("first_name LIKE ?", "%"+featuredAuthorSubstring+"%")},
	}

	for _, q := range queries {
		if err := q.query.Count(q.dest).Error; err != nil {
			return CatalogCounts{}, fmt.Errorf("failed to count catalog entities: %w", err)
		}
	}

	return counts, nil
}
