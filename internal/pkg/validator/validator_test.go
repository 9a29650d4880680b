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
	assert.True(t, IsValidEmail("ana@example.com"))
	assert.True(t, IsValidEmail("user.name+1@domain.co"))
	assert.False(t, IsValidEmail("ana@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("ana@domain"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0188e3a2-6c0e-7cc3-9f2a-1b2c3d4e5f60"))
	assert.True(t, IsValidUUID("0188E3A2-6C0E-7CC3-9F2A-1B2C3D4E5F60"))
	// Version 4 is rejected.
	assert.False(t, IsValidUUID("0188e3a2-6c0e-4cc3-9f2a-1b2c3d4e5f60"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	c, ok := IsValidClockTime("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 30, c.Minute())

	c, ok = IsValidClockTime("17:00:30")
	assert.True(t, ok)
	assert.Equal(t, 30, c.Second())

	_, ok = IsValidClockTime("25:00")
	assert.False(t, ok)
	_, ok = IsValidClockTime("9am")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-03-04T09:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-03-04T09:30:00+07:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-03-04 09:30:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	days := []string{"monday", "tuesday"}
	assert.True(t, IsInSlice("monday", days))
	assert.False(t, IsInSlice("Monday", days))
	assert.False(t, IsInSlice("sunday", days))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be YYYY-MM-DD"},
	}
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"date": "date must be YYYY-MM-DD",
	}, errs.ToMap())
	assert.Contains(t, errs.Error(), "name is required")
}
