// Command seed creates a catalog database populated with sample data from
// public domain books.
// Usage: go run cmd/seed/main.go [-db path/to/locallibrary.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/souravramos/locallibrary/internal/config"
	"github.com/souravramos/locallibrary/internal/database"
	"github.com/souravramos/locallibrary/internal/database/authors"
	"github.com/souravramos/locallibrary/internal/database/books"
	"github.com/souravramos/locallibrary/internal/database/genres"
	"github.com/souravramos/locallibrary/internal/database/instances"
	"github.com/souravramos/locallibrary/internal/database/languages"
	"github.com/souravramos/locallibrary/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the catalog database file")
	flag.Parse()

	log.Printf("Seeding catalog database at %s...", *dbPath)

	// Delete existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	genreRepo := genres.NewRepository(db.DB)
	languageRepo := languages.NewRepository(db.DB)
	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	instanceRepo := instances.NewRepository(db.DB)

	genreIDs := make(map[string]uint)
	for _, name := range []string{"Fantasy", "Science Fiction", "Satire", "Marathi Literature"} {
		genre, err := genreRepo.CreateGenre(name)
		if err != nil {
			log.Fatalf("Failed to create genre %s: %v", name, err)
		}
		genreIDs[name] = genre.ID
	}

	languageIDs := make(map[string]uint)
	for _, name := range []string{"English", "French", "Marathi"} {
		language, err := languageRepo.CreateLanguage(name)
		if err != nil {
			log.Fatalf("Failed to create language %s: %v", name, err)
		}
		languageIDs[name] = language.ID
	}

	authorIDs := make(map[string]uint)
	for _, a := range sampleAuthors() {
		author := a
		if err := authorRepo.CreateAuthor(&author); err != nil {
			log.Fatalf("Failed to create author %s: %v", author.LastName, err)
		}
		authorIDs[author.LastName] = author.ID
	}

	for _, cfg := range sampleBooks(authorIDs, languageIDs, genreIDs) {
		book := cfg.book
		if err := bookRepo.CreateBook(&book, cfg.genreIDs); err != nil {
			log.Fatalf("Failed to create book %s: %v", book.Title, err)
		}
		log.Printf("Saved: %s", book.Title)

		for _, imprint := range cfg.imprints {
			instance := entities.BookInstance{
				BookID:  &book.ID,
				Imprint: imprint,
				Status:  entities.StatusAvailable,
			}
			if err := instanceRepo.CreateInstance(&instance); err != nil {
				log.Printf("Failed to create instance of %s: %v", book.Title, err)
			}
		}
	}

	log.Println("Catalog database seeded successfully!")
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleAuthors() []entities.Author {
	return []entities.Author{
		{
			FirstName:   "J. R. R.",
			LastName:    "Tolkien",
			DateOfBirth: date(1892, time.January, 3),
			DateOfDeath: date(1973, time.September, 2),
			Details:     "English writer and philologist, best known for The Hobbit and The Lord of the Rings.",
		},
		{
			FirstName:   "Ursula K.",
			LastName:    "Le Guin",
			DateOfBirth: date(1929, time.October, 21),
			DateOfDeath: date(2018, time.January, 22),
			Details:     "American author of speculative fiction, including the Earthsea and Hainish series.",
		},
		{
			FirstName:   "वपु",
			LastName:    "काळे",
			DateOfBirth: date(1932, time.March, 25),
			DateOfDeath: date(2001, time.June, 26),
			Details:     "Marathi writer known for short stories and the collected Vapurza.",
		},
	}
}

type seedBook struct {
	book     entities.Book
	genreIDs []uint
	imprints []string
}

func sampleBooks(authorIDs, languageIDs, genreIDs map[string]uint) []seedBook {
	author := func(name string) *uint {
		id := authorIDs[name]
		return &id
	}
	language := func(name string) *uint {
		id := languageIDs[name]
		return &id
	}

	return []seedBook{
		{
			book: entities.Book{
				Title:      "The Hobbit",
				AuthorID:   author("Tolkien"),
				LanguageID: language("English"),
				Summary:    "Bilbo Baggins is swept into a quest to reclaim the dwarves' mountain home from the dragon Smaug.",
				ISBN:       "9780547928227",
				Edition:    "Reprint",
			},
			genreIDs: []uint{genreIDs["Fantasy"]},
			imprints: []string{"Houghton Mifflin, 2012", "Allen & Unwin, 1937"},
		},
		{
			book: entities.Book{
				Title:      "A Wizard of Earthsea",
				AuthorID:   author("Le Guin"),
				LanguageID: language("English"),
				Summary:    "The young wizard Ged looses a shadow on the world and must pursue it to its end.",
				ISBN:       "9780547773742",
			},
			genreIDs: []uint{genreIDs["Fantasy"], genreIDs["Science Fiction"]},
			imprints: []string{"Parnassus Press, 1968"},
		},
		{
			book: entities.Book{
				Title:      "वपुर्झा",
				AuthorID:   author("काळे"),
				LanguageID: language("Marathi"),
				Summary:    "A collection of reflections and aphorisms drawn from the author's stories.",
			},
			genreIDs: []uint{genreIDs["Marathi Literature"]},
			imprints: []string{"Mehta Publishing House"},
		},
	}
}
