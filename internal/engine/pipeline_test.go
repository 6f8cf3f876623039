package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdeck/internal/model"
)

func TestPipelineDeriveFilterSort(t *testing.T) {
	p := NewPipeline(model.Columns())
	users := []model.User{
		{ID: "u1", FirstName: "Nicolas", LastName: "Reyes", Country: "Chile", BirthDate: testNow.AddDate(-41, 0, -1)},
		{ID: "u2", FirstName: "Monica", LastName: "Silva", Country: "Brazil", BirthDate: testNow.AddDate(-35, 0, -1)},
		{ID: "u3", FirstName: "Amanda", LastName: "Torres", Country: "Brazil", BirthDate: testNow.AddDate(-28, 0, -1)},
	}
	fs := NewFilterState()
	fs.SetDiscrete("country", "Brazil")
	rows, err := p.Run(users, testNow, fs, SortState{ColumnID: "age", Dir: DirAsc})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "u3", rows[0].User.ID)
	assert.Equal(t, 28, rows[0].User.Age)
	assert.Equal(t, "u2", rows[1].User.ID)
}

func TestPipelineKeysFollowRecordIDs(t *testing.T) {
	rows := []Row{
		{User: model.DerivedUser{User: model.User{ID: "b"}}},
		{User: model.DerivedUser{User: model.User{ID: "a"}}},
	}
	assert.Equal(t, []string{"b", "a"}, Keys(rows))
}

// The pipeline is a full recompute per canonical change; this pins the
// target data size (thousands of rows) so a silent degradation shows up.
func TestPipelineFullRecomputeAtTargetSize(t *testing.T) {
	p := NewPipeline(model.Columns())
	users := make([]model.User, 5000)
	for i := range users {
		users[i] = model.User{
			ID:        fmt.Sprintf("u%04d", i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Country:   model.CountryList[i%len(model.CountryList)],
			BirthDate: testNow.AddDate(-20-(i%50), 0, -1),
		}
	}
	fs := NewFilterState()
	fs.GlobalQuery = "First12"
	start := time.Now()
	rows, err := p.Run(users, testNow, fs, SortState{ColumnID: "lastName", Dir: DirAsc})
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	assert.Less(t, time.Since(start), 2*time.Second)
}
