// Package forms validates the add and edit dialogs. Fields hold the raw
// text the inputs captured; Validate turns them into per-field messages and
// ToUser builds the record only once everything passed.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"staffdeck/internal/model"
)

const birthDateLayout = "2006-01-02"

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z \-]*$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s-]{0,14}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	must(v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("phone_loose", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("known_country", func(fl validator.FieldLevel) bool {
		return model.ValidCountry(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// UserForm mirrors the dialog fields as entered. BirthDate stays a string
// until validation parses it.
type UserForm struct {
	ID        string `json:"id" validate:"-"`
	FirstName string `json:"firstName" validate:"required,max=50,person_name"`
	LastName  string `json:"lastName" validate:"required,max=50,person_name"`
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	BirthDate string `json:"birthDate" validate:"required"`
	JobTitle  string `json:"jobTitle" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,phone_loose"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"omitempty,max=256"`
	City      string `json:"city" validate:"required,max=50"`
	Country   string `json:"country" validate:"required,known_country"`
}

// FromUser prefills the form for the edit dialog.
func FromUser(u model.User) UserForm {
	return UserForm{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    string(u.Gender),
		BirthDate: model.FormatBirthDate(u.BirthDate),
		JobTitle:  u.JobTitle,
		Phone:     u.Phone,
		Email:     u.Email,
		Address:   u.Address,
		City:      u.City,
		Country:   u.Country,
	}
}

// Validate checks every field and returns messages keyed by field name.
// An empty map means the form is acceptable. The reference instant bounds
// the birth date; dates after it are rejected.
func (f UserForm) Validate(now time.Time) map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(f); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs[fe.Field()] = message(fe)
			}
		} else {
			errs["form"] = err.Error()
		}
	}
	if _, present := errs["birthDate"]; !present && f.BirthDate != "" {
		bd, err := time.Parse(birthDateLayout, strings.TrimSpace(f.BirthDate))
		switch {
		case err != nil:
			errs["birthDate"] = "must be a date like 1987-03-21"
		case bd.After(now):
			errs["birthDate"] = "cannot be in the future"
		}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be male, female or other"
	case "person_name":
		return "only letters, spaces and hyphens are allowed"
	case "phone_loose":
		return "must be a phone number like +56 912 345-6789"
	case "known_country":
		return "is not a known country"
	}
	return "is invalid"
}

// ToUser converts a validated form into a record. Call Validate first; this
// assumes the birth date parses.
func (f UserForm) ToUser() model.User {
	bd, _ := time.Parse(birthDateLayout, strings.TrimSpace(f.BirthDate))
	return model.User{
		ID:        f.ID,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Gender:    model.Gender(f.Gender),
		BirthDate: bd,
		JobTitle:  strings.TrimSpace(f.JobTitle),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
		Address:   strings.TrimSpace(f.Address),
		City:      strings.TrimSpace(f.City),
		Country:   f.Country,
	}
}

// Patch lists the fields that differ from the original record, shaped for a
// partial update. The id never appears in a patch.
func (f UserForm) Patch(orig model.User) map[string]any {
	next := f.ToUser()
	patch := map[string]any{}
	if next.FirstName != orig.FirstName {
		patch["firstName"] = next.FirstName
	}
	if next.LastName != orig.LastName {
		patch["lastName"] = next.LastName
	}
	if next.Gender != orig.Gender {
		patch["gender"] = next.Gender
	}
	if !next.BirthDate.Equal(orig.BirthDate) {
		patch["birthDate"] = next.BirthDate
	}
	if next.JobTitle != orig.JobTitle {
		patch["jobTitle"] = next.JobTitle
	}
	if next.Phone != orig.Phone {
		patch["phone"] = next.Phone
	}
	if next.Email != orig.Email {
		patch["email"] = next.Email
	}
	if next.Address != orig.Address {
		patch["address"] = next.Address
	}
	if next.City != orig.City {
		patch["city"] = next.City
	}
	if next.Country != orig.Country {
		patch["country"] = next.Country
	}
	return patch
}
