package store

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdeck/internal/model"
)

func newTestClient(t *testing.T, users []model.User, opts ServerOptions) *Client {
	t.Helper()
	srv := NewServer(users, opts)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return NewClient(ts.URL)
}

func seedRoster() []model.User {
	return SeedUsers(5, 42)
}

func TestListReturnsSeededRoster(t *testing.T) {
	c := newTestClient(t, seedRoster(), ServerOptions{})
	users, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "Nicolas", users[0].FirstName)
	assert.Equal(t, "Monica", users[1].FirstName)
	assert.Equal(t, "Amanda", users[2].FirstName)
}

func TestCreateThenListIncludesExactlyOneNewRecord(t *testing.T) {
	c := newTestClient(t, seedRoster(), ServerOptions{})
	ctx := context.Background()

	created, err := c.Create(ctx, model.User{
		FirstName: "John",
		LastName:  "Doe",
		Gender:    model.GenderMale,
		BirthDate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Email:     "john.doe@example.com",
		City:      "Santiago",
		Country:   "Chile",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	users, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 6)
	matches := 0
	for _, u := range users {
		if u.FirstName == "John" && u.LastName == "Doe" {
			matches++
			assert.Equal(t, created.ID, u.ID)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestDeleteRestoresPriorCount(t *testing.T) {
	c := newTestClient(t, seedRoster(), ServerOptions{})
	ctx := context.Background()

	created, err := c.Create(ctx, model.User{
		FirstName: "Temp", LastName: "Worker",
		Gender:    model.GenderOther,
		BirthDate: time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:     "temp@example.com", City: "Lima", Country: "Peru",
	})
	require.NoError(t, err)

	removed, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	users, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestUpdatePatchesOnlyNamedFields(t *testing.T) {
	roster := seedRoster()
	c := newTestClient(t, roster, ServerOptions{})
	ctx := context.Background()

	target := roster[0]
	updated, err := c.Update(ctx, target.ID, map[string]any{
		"firstName": "THIS IS EDITED FIRST NAME",
	})
	require.NoError(t, err)
	assert.Equal(t, "THIS IS EDITED FIRST NAME", updated.FirstName)
	assert.Equal(t, target.LastName, updated.LastName)
	assert.Equal(t, target.Email, updated.Email)
	assert.Equal(t, target.ID, updated.ID)

	got, err := c.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "THIS IS EDITED FIRST NAME", got.FirstName)
}

func TestUnknownIDIsNotFound(t *testing.T) {
	c := newTestClient(t, seedRoster(), ServerOptions{})
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "User not found.")

	_, err = c.Update(ctx, "missing", map[string]any{"city": "Porto"})
	assert.True(t, IsNotFound(err))

	_, err = c.Delete(ctx, "missing")
	assert.True(t, IsNotFound(err))
}

func TestFailureInjectionSurfacesAsTransportError(t *testing.T) {
	c := newTestClient(t, seedRoster(), ServerOptions{FailRate: 1})
	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.EqualError(t, err, "Simulated server error.")
}

func TestFailedMutationLeavesRosterIntact(t *testing.T) {
	roster := seedRoster()
	srv := NewServer(roster, ServerOptions{})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	c := NewClient(ts.URL)
	ctx := context.Background()

	_, err := c.Delete(ctx, "nope")
	require.Error(t, err)

	users, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(roster))
}

func TestSeedUsersShape(t *testing.T) {
	users := SeedUsers(50, 7)
	require.Len(t, users, 50)
	seen := map[string]bool{}
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
		assert.NotEmpty(t, u.FirstName)
		assert.True(t, u.Gender.Valid())
		assert.True(t, model.ValidCountry(u.Country), "country %q", u.Country)
		assert.False(t, u.BirthDate.IsZero())
	}
}

func TestSeedFileRoundTrip(t *testing.T) {
	users := SeedUsers(8, 3)
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, SaveUsers(path, users))

	loaded, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, loaded, 8)
	assert.Equal(t, users[0].ID, loaded[0].ID)
	assert.Equal(t, users[0].FirstName, loaded[0].FirstName)
	assert.True(t, users[0].BirthDate.Equal(loaded[0].BirthDate))
}
