package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("jdoe"))
	assert.True(t, IsValidUsername("j.doe_99"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-06-03")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("03-06-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "year is required"},
	}

	assert.Contains(t, errs.Error(), "month: must be between 1 and 12")
	assert.Equal(t, "year is required", errs.ToMap()["year"])
}
