package model

import (
	"strconv"
	"strings"
)

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterDiscrete
	FilterRange
)

type SortKind int

const (
	// SortText compares case-sensitively, plain lexicographic.
	SortText SortKind = iota
	// SortAlnum is a case-insensitive natural comparison (digit runs compare
	// numerically), used for identifiers and mixed alphanumeric values.
	SortAlnum
	SortNumeric
	SortDate
)

// Column describes one grid column: identity, presentation, and which filter
// and sort behaviors it participates in. Value must stay pure; interactive
// wiring lives in the ui package.
type Column struct {
	ID       string
	Label    string
	Width    int
	Sortable bool
	Filter   FilterKind
	Sort     SortKind
	// Value renders the cell/facet text for a row.
	Value func(DerivedUser) string
	// Num extracts the numeric key for range filtering and numeric sorting.
	Num func(DerivedUser) (float64, bool)
}

// Missing reports whether the row has no value for this column. Missing rows
// sort first in ascending order on every column.
func (c Column) Missing(u DerivedUser) bool {
	if c.Num != nil {
		_, ok := c.Num(u)
		return !ok
	}
	return c.Value(u) == ""
}

// Columns returns the grid's column set in display order. The ids are stable
// and used as filter-state keys.
func Columns() []Column {
	return []Column{
		{ID: "id", Label: "ID", Width: 10, Sortable: true, Filter: FilterDiscrete, Sort: SortAlnum,
			Value: func(u DerivedUser) string { return u.ID }},
		{ID: "firstName", Label: "First Name", Width: 12, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.FirstName }},
		{ID: "lastName", Label: "Last Name", Width: 12, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.LastName }},
		{ID: "gender", Label: "Gender", Width: 8, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return string(u.Gender) }},
		{ID: "birthDate", Label: "Birth Date", Width: 11, Sortable: true, Filter: FilterDiscrete, Sort: SortDate,
			Value: func(u DerivedUser) string { return FormatBirthDate(u.BirthDate) }},
		{ID: "age", Label: "Age", Width: 5, Sortable: true, Filter: FilterRange, Sort: SortNumeric,
			Value: func(u DerivedUser) string { return strconv.Itoa(u.Age) },
			Num:   func(u DerivedUser) (float64, bool) { return float64(u.Age), true }},
		{ID: "jobTitle", Label: "Job Title", Width: 18, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.JobTitle }},
		{ID: "phone", Label: "Phone", Width: 14, Sortable: true, Filter: FilterDiscrete, Sort: SortAlnum,
			Value: func(u DerivedUser) string { return u.Phone }},
		{ID: "email", Label: "Email", Width: 22, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.Email }},
		{ID: "address", Label: "Address", Width: 20, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.Address }},
		{ID: "city", Label: "City", Width: 12, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.City }},
		{ID: "country", Label: "Country", Width: 14, Sortable: true, Filter: FilterDiscrete, Sort: SortText,
			Value: func(u DerivedUser) string { return u.Country }},
	}
}

// ColumnByID looks a column up by its stable id.
func ColumnByID(id string) (Column, bool) {
	for _, c := range Columns() {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// CompareAlnum is the natural alphanumeric comparison: case-insensitive, with
// digit runs compared by numeric value ("u10" sorts after "u9").
func CompareAlnum(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	for a != "" && b != "" {
		ad, an := splitLead(a)
		bd, bn := splitLead(b)
		if an && bn {
			// Compare digit runs numerically: shorter (zero-stripped) run is
			// smaller; equal lengths fall back to lexicographic.
			at, bt := strings.TrimLeft(ad, "0"), strings.TrimLeft(bd, "0")
			if len(at) != len(bt) {
				if len(at) < len(bt) {
					return -1
				}
				return 1
			}
			if at != bt {
				if at < bt {
					return -1
				}
				return 1
			}
		} else if ad != bd {
			if ad < bd {
				return -1
			}
			return 1
		}
		a, b = a[len(ad):], b[len(bd):]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// splitLead returns the leading all-digit or all-non-digit run.
func splitLead(s string) (string, bool) {
	isDigit := s[0] >= '0' && s[0] <= '9'
	for i := 1; i < len(s); i++ {
		d := s[i] >= '0' && s[i] <= '9'
		if d != isDigit {
			return s[:i], isDigit
		}
	}
	return s, isDigit
}
