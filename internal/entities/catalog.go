package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoanStatus tracks the availability of a single physical copy of a book.
// It is a closed enumeration; repositories reject any other value.
type LoanStatus string

const (
	StatusMaintenance LoanStatus = "maintenance"
	StatusOnLoan      LoanStatus = "on_loan"
	StatusAvailable   LoanStatus = "available"
	StatusReserved    LoanStatus = "reserved"
)

// LoanStatuses lists every valid status value, in display order.
var LoanStatuses = []LoanStatus{StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved}

// Valid reports whether s is one of the known loan statuses.
func (s LoanStatus) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

// Display returns a human-readable label for templates.
func (s LoanStatus) Display() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On Loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return string(s)
}

// DefaultBookImage is the placeholder used until a cover is uploaded.
const DefaultBookImage = "default.jpg"

// Genre is a category label applicable to many books.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200" json:"name"`
	Books     []Book    `gorm:"many2many:book_genres;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Language is a book's natural language (e.g. English, French, Japanese).
type Language struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100" json:"first_name"`
	LastName    string     `gorm:"index;size:100" json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Details     string     `gorm:"type:text;size:2000" json:"details,omitempty"`
	Image       string     `gorm:"size:1024;default:'default.jpg'" json:"image,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DisplayName renders the author as "Last, First" for listings.
func (a Author) DisplayName() string {
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

// Book describes a title in the catalog, not a physical copy.
type Book struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"index;size:200" json:"title"`
	Image        string    `gorm:"size:1024;default:'default.jpg'" json:"image,omitempty"`
	AuthorID     *uint     `gorm:"index" json:"author_id,omitempty"`
	Author       *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	LanguageID   *uint     `gorm:"index" json:"language_id,omitempty"`
	Language     *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Summary      string    `gorm:"type:text;size:1000" json:"summary"`
	ISBN         string    `gorm:"size:13" json:"isbn,omitempty"`
	Genres       []Genre   `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Edition      string    `gorm:"size:20" json:"edition,omitempty"`
	Price        *int      `json:"price,omitempty"`
	BuyOnlineURL string    `gorm:"size:200" json:"buy_online_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayGenres joins up to three genre names for list pages.
func (b Book) DisplayGenres() string {
	s := ""
	for i, g := range b.Genres {
		if i == 3 {
			break
		}
		if i > 0 {
			s += ", "
		}
		s += g.Name
	}
	return s
}

// BookInstance is one physical, loanable copy of a book. Its primary key is
// a UUID generated at creation time.
type BookInstance struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	BookID    *uint      `gorm:"index" json:"book_id,omitempty"`
	Book      *Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Imprint   string     `gorm:"size:200" json:"imprint"`
	DueBack   *time.Time `json:"due_back,omitempty"`
	Status    LoanStatus `gorm:"size:20;default:'maintenance'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate assigns the instance identifier and default status.
func (bi *BookInstance) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == "" {
		bi.ID = uuid.NewString()
	}
	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	return nil
}

func (Genre) TableName() string {
	return "genres"
}

func (Language) TableName() string {
	return "languages"
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (BookInstance) TableName() string {
	return "book_instances"
}
