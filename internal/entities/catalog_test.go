package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoanStatusValid(t *testing.T) {
	for _, status := range LoanStatuses {
		assert.True(t, status.Valid(), "status %q", status)
	}
	assert.False(t, LoanStatus("lost").Valid())
	assert.False(t, LoanStatus("").Valid())
}

func TestLoanStatusDisplay(t *testing.T) {
	assert.Equal(t, "On Loan", StatusOnLoan.Display())
	assert.Equal(t, "Available", StatusAvailable.Display())
	assert.Equal(t, "weird", LoanStatus("weird").Display())
}

func TestAuthorDisplayName(t *testing.T) {
	author := Author{FirstName: "Ursula", LastName: "Le Guin"}
	assert.Equal(t, "Le Guin, Ursula", author.DisplayName())
}

func TestBookDisplayGenres(t *testing.T) {
	book := Book{Genres: []Genre{
		{Name: "Fantasy"},
		{Name: "Satire"},
		{Name: "History"},
		{Name: "Poetry"},
	}}

	// Only the first three genres show up on list pages.
	assert.Equal(t, "Fantasy, Satire, History", book.DisplayGenres())
}

func TestBookDisplayGenresEmpty(t *testing.T) {
	assert.Equal(t, "", Book{}.DisplayGenres())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title":   "must be provided",
		"summary": "must be provided",
	}}

	// Field order in the message is deterministic.
	assert.Equal(t, "validation failed: summary: must be provided; title: must be provided", err.Error())
}
