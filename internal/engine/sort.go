package engine

import (
	"sort"
	"strings"

	"staffdeck/internal/model"
)

type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

// SortRank is a virtual column id ordering rows by global-query rank,
// closest match first, with a natural alphanumeric tie-break.
const SortRank = "@rank"

// SortState is the single active sort: at most one column at a time.
// ColumnID empty means unsorted (original relative order).
type SortState struct {
	ColumnID string
	Dir      Direction
}

// NextSort advances the click-cycle for a header: unsorted → ascending →
// descending → unsorted. Clicking a different column always starts at
// ascending and resets the previous one.
func NextSort(cur SortState, colID string) SortState {
	if cur.ColumnID != colID {
		return SortState{ColumnID: colID, Dir: DirAsc}
	}
	switch cur.Dir {
	case DirAsc:
		return SortState{ColumnID: colID, Dir: DirDesc}
	case DirDesc:
		return SortState{}
	default:
		return SortState{ColumnID: colID, Dir: DirAsc}
	}
}

// Sort orders rows in place per the sort state. The sort is stable: rows
// with equal keys keep their pre-sort relative order. Rows missing the key
// value sort first when ascending, on every column.
func Sort(rows []Row, st SortState) {
	if st.ColumnID == "" || st.Dir == DirNone {
		return
	}
	if st.ColumnID == SortRank {
		sort.SliceStable(rows, func(i, j int) bool {
			c := compareRank(rows[i], rows[j])
			if st.Dir == DirDesc {
				return c > 0
			}
			return c < 0
		})
		return
	}
	col, ok := model.ColumnByID(st.ColumnID)
	if !ok {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareRows(col, rows[i].User, rows[j].User)
		if st.Dir == DirDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareRows(col model.Column, a, b model.DerivedUser) int {
	am, bm := col.Missing(a), col.Missing(b)
	if am || bm {
		switch {
		case am && bm:
			return 0
		case am:
			return -1
		default:
			return 1
		}
	}
	switch col.Sort {
	case model.SortNumeric:
		av, _ := col.Num(a)
		bv, _ := col.Num(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case model.SortDate:
		at, bt := a.BirthDate, b.BirthDate
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	case model.SortAlnum:
		return model.CompareAlnum(col.Value(a), col.Value(b))
	default:
		return strings.Compare(col.Value(a), col.Value(b))
	}
}

// compareRank orders by closeness of the global match (higher rank first);
// equal ranks fall back to a natural comparison on the display name.
func compareRank(a, b Row) int {
	if a.Rank != b.Rank {
		if a.Rank > b.Rank {
			return -1
		}
		return 1
	}
	return model.CompareAlnum(displayName(a.User), displayName(b.User))
}

func displayName(u model.DerivedUser) string {
	return u.FirstName + " " + u.LastName
}
