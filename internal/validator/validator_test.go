package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestAddError_KeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("name", "first")
	v.AddError("name", "second")

	assert.Equal(t, "first", v.Errors["name"])
}

func TestMaxChars(t *testing.T) {
	assert.True(t, MaxChars("hello", 5))
	assert.False(t, MaxChars("hello!", 5))
	// Counted in runes, not bytes.
	assert.True(t, MaxChars("वपुर्झा", 10))
}
