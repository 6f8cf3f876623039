package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdeck/internal/model"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testUser(id, first, last string, age int, country string) model.DerivedUser {
	birth := testNow.AddDate(-age, 0, -30)
	return model.DeriveUser(model.User{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Gender:    model.GenderOther,
		BirthDate: birth,
		Email:     first + "@example.com",
		City:      "Springfield",
		Country:   country,
	}, testNow)
}

func seedRows() []model.DerivedUser {
	return []model.DerivedUser{
		testUser("u1", "Nicolas", "Reyes", 41, "Chile"),
		testUser("u2", "Monica", "Silva", 35, "Brazil"),
		testUser("u3", "Amanda", "Torres", 28, "Brazil"),
		testUser("u4", "Nelson", "Mora", 52, "Chile"),
		testUser("u5", "Julio", "Pons", 35, "Spain"),
	}
}

func TestGlobalQueryExactFirstName(t *testing.T) {
	e := NewEngine(model.Columns())
	fs := NewFilterState()
	fs.GlobalQuery = "Amanda"
	rows, err := e.Apply(seedRows(), fs)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Amanda", rows[0].User.FirstName)

	// Clearing the query restores all five rows.
	fs.GlobalQuery = ""
	rows, err = e.Apply(seedRows(), fs)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestFilteredSetIsSubsetAndClearRestores(t *testing.T) {
	e := NewEngine(model.Columns())
	all := seedRows()
	ids := map[string]bool{}
	for _, u := range all {
		ids[u.ID] = true
	}

	fs := NewFilterState()
	fs.GlobalQuery = "ni"
	fs.SetDiscrete("country", "Chile")
	rows, err := e.Apply(all, fs)
	require.NoError(t, err)
	for _, r := range rows {
		assert.True(t, ids[r.User.ID], "filtered row must come from the canonical list")
	}

	fs.ClearAll()
	rows, err = e.Apply(all, fs)
	require.NoError(t, err)
	assert.Len(t, rows, len(all))
	assert.False(t, fs.Active())
}

func TestColumnFilterCommutativity(t *testing.T) {
	e := NewEngine(model.Columns())
	all := seedRows()

	ab := NewFilterState()
	ab.SetDiscrete("country", "Brazil")
	ab.SetDiscrete("firstName", "Monica")

	ba := NewFilterState()
	ba.SetDiscrete("firstName", "Monica")
	ba.SetDiscrete("country", "Brazil")

	r1, err := e.Apply(all, ab)
	require.NoError(t, err)
	r2, err := e.Apply(all, ba)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	require.Len(t, r1, 1)
	assert.Equal(t, "u2", r1[0].User.ID)
}

func TestRangeFilterInclusiveAndUnbounded(t *testing.T) {
	e := NewEngine(model.Columns())
	all := seedRows()

	min, max := 35.0, 41.0
	fs := NewFilterState()
	fs.SetRange("age", &min, &max)
	rows, err := e.Apply(all, fs)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.User.Age, 35)
		assert.LessOrEqual(t, r.User.Age, 41)
	}

	// Absent max means unbounded above.
	fs.SetRange("age", &min, nil)
	rows, err = e.Apply(all, fs)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	// Both bounds absent removes the key entirely.
	fs.SetRange("age", nil, nil)
	_, active := fs.Columns["age"]
	assert.False(t, active)
}

func TestClearingDiscreteFilterRemovesKey(t *testing.T) {
	fs := NewFilterState()
	fs.SetDiscrete("city", "Springfield")
	assert.Contains(t, fs.Columns, "city")
	fs.SetDiscrete("city", "")
	assert.NotContains(t, fs.Columns, "city")
}

func TestFiltersPreserveRelativeOrder(t *testing.T) {
	e := NewEngine(model.Columns())
	fs := NewFilterState()
	fs.SetDiscrete("country", "Chile")
	rows, err := e.Apply(seedRows(), fs)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "u1", rows[0].User.ID)
	assert.Equal(t, "u4", rows[1].User.ID)
}

func TestFacetsReflectFilteredSet(t *testing.T) {
	e := NewEngine(model.Columns())
	fs := NewFilterState()
	fs.SetDiscrete("country", "Brazil")
	rows, err := e.Apply(seedRows(), fs)
	require.NoError(t, err)

	first, _ := model.ColumnByID("firstName")
	facets := Facets(rows, first)
	assert.Equal(t, []string{"Amanda", "Monica"}, facets)
}

func TestFacetsDropEmptyValues(t *testing.T) {
	rows := []Row{
		{User: model.DerivedUser{User: model.User{ID: "a", JobTitle: "Clerk"}}},
		{User: model.DerivedUser{User: model.User{ID: "b"}}},
		{User: model.DerivedUser{User: model.User{ID: "c", JobTitle: "Analyst"}}},
	}
	job, _ := model.ColumnByID("jobTitle")
	assert.Equal(t, []string{"Analyst", "Clerk"}, Facets(rows, job))
}

func TestFacetMinMax(t *testing.T) {
	e := NewEngine(model.Columns())
	rows, err := e.Apply(seedRows(), NewFilterState())
	require.NoError(t, err)
	age, _ := model.ColumnByID("age")
	min, max, ok := FacetMinMax(rows, age)
	require.True(t, ok)
	assert.Equal(t, 28.0, min)
	assert.Equal(t, 52.0, max)
}

func TestExpressionFilter(t *testing.T) {
	e := NewEngine(model.Columns())
	fs := NewFilterState()
	fs.Expr = "age > 30 && country == 'Chile'"
	rows, err := e.Apply(seedRows(), fs)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	fs.Expr = "this is not an expression"
	_, err = e.Apply(seedRows(), fs)
	assert.Error(t, err)
}

func TestGlobalQueryKeepsRank(t *testing.T) {
	e := NewEngine(model.Columns())
	fs := NewFilterState()
	fs.GlobalQuery = "amanda"
	rows, err := e.Apply(seedRows(), fs)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, RankEqual, rows[0].Rank)
}
