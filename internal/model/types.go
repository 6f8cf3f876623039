package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User is the canonical record held by the record store. ID is immutable
// after creation; everything else can be patched.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birthDate"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
}

// DerivedUser is a User plus computed display fields. It is ephemeral:
// rebuilt from the canonical list on every change, never stored.
type DerivedUser struct {
	User
	Age int `json:"age"`
}

// DeriveUser computes the display record for a single user at the given
// reference instant. Age is whole elapsed calendar years: someone born
// exactly K years ago today is K, regardless of time-of-day components.
func DeriveUser(u User, now time.Time) DerivedUser {
	return DerivedUser{User: u, Age: ageAt(u.BirthDate, now)}
}

// DeriveUsers maps the whole canonical list with a single "now" so a render
// pass sees consistent ages.
func DeriveUsers(users []User, now time.Time) []DerivedUser {
	out := make([]DerivedUser, len(users))
	for i, u := range users {
		out[i] = DeriveUser(u, now)
	}
	return out
}

func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	// Walk back if the birthday anniversary has not happened yet this year.
	if anniversary := birth.AddDate(years, 0, 0); anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// FormatBirthDate renders a birth date the way the grid and facet lists show it.
func FormatBirthDate(t time.Time) string {
	return t.Format("2006-01-02")
}
