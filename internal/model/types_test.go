package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAtExactAnniversary(t *testing.T) {
	// Born exactly 30 years ago today: age is 30, not 29 or 31.
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	birth := time.Date(1996, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, DeriveUser(User{BirthDate: birth}, now).Age)
}

func TestAgeDayBeforeAnniversary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	birth := time.Date(1996, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, DeriveUser(User{BirthDate: birth}, now).Age)
}

func TestAgeCountsFullYearsIncludingTimeOfDay(t *testing.T) {
	// On the anniversary day, a birth time-of-day still ahead of "now" means
	// the full year has not elapsed yet, so the age stays one lower.
	now := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	birth := time.Date(2000, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 25, DeriveUser(User{BirthDate: birth}, now).Age)
}

func TestAgeLeapDayBirth(t *testing.T) {
	birth := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, DeriveUser(User{BirthDate: birth}, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)).Age)
	assert.Equal(t, 25, DeriveUser(User{BirthDate: birth}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).Age)
}

func TestDeriveUsersIsPure(t *testing.T) {
	now := time.Now()
	users := []User{{ID: "a", BirthDate: now.AddDate(-40, 0, 1)}}
	first := DeriveUsers(users, now)
	second := DeriveUsers(users, now)
	assert.Equal(t, first, second)
	assert.Equal(t, 39, first[0].Age)
}

func TestCompareAlnum(t *testing.T) {
	assert.Negative(t, CompareAlnum("u9", "u10"))
	assert.Positive(t, CompareAlnum("u10", "u9"))
	assert.Zero(t, CompareAlnum("ABC", "abc"))
	assert.Negative(t, CompareAlnum("a1b2", "a1b10"))
	assert.Negative(t, CompareAlnum("abc", "abcd"))
	assert.Zero(t, CompareAlnum("007", "7"))
}

func TestColumnMissing(t *testing.T) {
	phone, ok := ColumnByID("phone")
	assert.True(t, ok)
	assert.True(t, phone.Missing(DerivedUser{}))
	assert.False(t, phone.Missing(DerivedUser{User: User{Phone: "+1 555"}}))

	age, _ := ColumnByID("age")
	assert.False(t, age.Missing(DerivedUser{}))
}

func TestValidCountry(t *testing.T) {
	assert.True(t, ValidCountry("France"))
	assert.False(t, ValidCountry("Atlantis"))
}
