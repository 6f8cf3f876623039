package state

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdeck/internal/model"
	"staffdeck/internal/store"
)

func newFixture(t *testing.T, opts store.ServerOptions) (*Store, *Coordinator) {
	t.Helper()
	srv := store.NewServer(store.SeedUsers(5, 42), opts)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	st := NewStore()
	co := NewCoordinator(store.NewClient(ts.URL))
	st.Apply(OpStarted{Op: OpLoad})
	st.Apply(co.Load(context.Background()))
	require.Equal(t, 5, st.Len())
	return st, co
}

func TestAddGrowsListByOne(t *testing.T) {
	st, co := newFixture(t, store.ServerOptions{})

	st.Apply(OpStarted{Op: OpAdd})
	assert.True(t, st.Busy(OpAdd))
	ev := co.Add(context.Background(), model.User{
		FirstName: "John",
		LastName:  "Doe",
		Gender:    model.GenderMale,
		BirthDate: time.Date(1991, 6, 2, 0, 0, 0, 0, time.UTC),
		Email:     "john.doe@example.com",
		City:      "Madrid",
		Country:   "Spain",
	})
	st.Apply(ev)

	assert.Equal(t, 6, st.Len())
	assert.False(t, st.Busy(OpAdd))
	assert.Equal(t, StatusIdle, st.Slot(OpAdd).Status)
	last := st.Users()[5]
	assert.Equal(t, "John", last.FirstName)
	assert.NotEmpty(t, last.ID)
}

func TestEditRewritesMatchingRecordInPlace(t *testing.T) {
	st, co := newFixture(t, store.ServerOptions{})
	first := st.Users()[0]

	st.Apply(OpStarted{Op: OpEdit})
	ev := co.Edit(context.Background(), first.ID, map[string]any{
		"firstName": "THIS IS EDITED FIRST NAME",
	})
	st.Apply(ev)

	got := st.Users()[0]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "THIS IS EDITED FIRST NAME", got.FirstName)
	assert.Equal(t, first.LastName, got.LastName)
	assert.Equal(t, 5, st.Len())
}

func TestDeleteShrinksListByOne(t *testing.T) {
	st, co := newFixture(t, store.ServerOptions{})
	first := st.Users()[0]

	st.Apply(OpStarted{Op: OpDelete})
	st.Apply(co.Delete(context.Background(), first.ID))

	assert.Equal(t, 4, st.Len())
	for _, u := range st.Users() {
		assert.NotEqual(t, first.ID, u.ID)
	}
}

func TestFailedOpLeavesListUntouched(t *testing.T) {
	st, co := newFixture(t, store.ServerOptions{})
	before := make([]model.User, st.Len())
	copy(before, st.Users())

	st.Apply(OpStarted{Op: OpDelete})
	ev := co.Delete(context.Background(), "no-such-id")
	st.Apply(ev)

	assert.Equal(t, before, st.Users())
	slot := st.Slot(OpDelete)
	assert.Equal(t, StatusFailed, slot.Status)
	assert.Equal(t, "User not found.", slot.Err)
}

func TestOpSlotsAreIndependent(t *testing.T) {
	st := NewStore()
	st.Apply(OpStarted{Op: OpAdd})
	st.Apply(OpStarted{Op: OpDelete})
	assert.True(t, st.Busy(OpAdd))
	assert.True(t, st.Busy(OpDelete))
	assert.False(t, st.Busy(OpEdit))
	assert.True(t, st.AnyBusy())

	st.Apply(AddDone{User: model.User{ID: "x"}})
	assert.False(t, st.Busy(OpAdd))
	assert.True(t, st.Busy(OpDelete))
}

func TestStaleCompletionForUnknownIDIsIgnored(t *testing.T) {
	st := NewStore()
	st.Apply(LoadDone{Users: store.SeedUsers(3, 9)})

	st.Apply(EditDone{User: model.User{ID: "ghost", FirstName: "Nobody"}})
	st.Apply(DeleteDone{ID: "ghost"})

	assert.Equal(t, 3, st.Len())
	for _, u := range st.Users() {
		assert.NotEqual(t, "Nobody", u.FirstName)
	}
}

func TestLoadFailureRecordsMessage(t *testing.T) {
	srv := store.NewServer(nil, store.ServerOptions{FailRate: 1})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	st := NewStore()
	co := NewCoordinator(store.NewClient(ts.URL))
	st.Apply(OpStarted{Op: OpLoad})
	st.Apply(co.Load(context.Background()))

	slot := st.Slot(OpLoad)
	assert.Equal(t, StatusFailed, slot.Status)
	assert.Equal(t, "Simulated server error.", slot.Err)
	assert.Equal(t, 0, st.Len())
}
