package engine

import (
	"sort"

	"staffdeck/internal/model"
)

// maxFacetValues caps how many distinct values a discrete filter offers.
const maxFacetValues = 2000

// ColumnFilter is one column's active filter. Exactly one of the discrete
// value or the range bounds is meaningful, fixed by the column's filter kind.
type ColumnFilter struct {
	Value string
	Min   *float64
	Max   *float64
}

func (f ColumnFilter) empty() bool {
	return f.Value == "" && f.Min == nil && f.Max == nil
}

// FilterState holds the session's filter inputs: the global fuzzy query, the
// per-column filters, and an optional row expression. Column keys exist only
// while that column has an active value; clearing removes the key.
type FilterState struct {
	GlobalQuery string
	Columns     map[string]ColumnFilter
	Expr        string
}

func NewFilterState() FilterState {
	return FilterState{Columns: map[string]ColumnFilter{}}
}

// SetDiscrete applies (or, for an empty value, clears) a discrete filter.
func (s *FilterState) SetDiscrete(colID, value string) {
	s.set(colID, ColumnFilter{Value: value})
}

// SetRange applies a numeric range filter; both bounds nil clears it.
func (s *FilterState) SetRange(colID string, min, max *float64) {
	s.set(colID, ColumnFilter{Min: min, Max: max})
}

func (s *FilterState) set(colID string, f ColumnFilter) {
	if s.Columns == nil {
		s.Columns = map[string]ColumnFilter{}
	}
	if f.empty() {
		delete(s.Columns, colID)
		return
	}
	s.Columns[colID] = f
}

func (s *FilterState) Clear(colID string) { delete(s.Columns, colID) }

func (s *FilterState) ClearAll() {
	s.GlobalQuery = ""
	s.Expr = ""
	s.Columns = map[string]ColumnFilter{}
}

func (s FilterState) Active() bool {
	return s.GlobalQuery != "" || s.Expr != "" || len(s.Columns) > 0
}

// Row is a derived record that passed the filter, tagged with its global
// query rank for rank-ordered sorting.
type Row struct {
	User model.DerivedUser
	Rank int
}

// Engine evaluates the composed filter predicates against derived rows.
type Engine struct {
	cols      []model.Column
	threshold int
}

// NewEngine builds a filter engine over the given column set. The inclusion
// threshold is word-starts-with: contains and subsequence matches rank for
// tie-breaking but do not pass the global filter on their own.
func NewEngine(cols []model.Column) *Engine {
	return &Engine{cols: cols, threshold: RankWordStartsWith}
}

// Apply returns the subset of rows passing every active predicate, in the
// input's relative order. Ordering beyond that is the sort engine's job.
func (e *Engine) Apply(rows []model.DerivedUser, fs FilterState) ([]Row, error) {
	var expr *RowExpr
	if fs.Expr != "" {
		var err error
		if expr, err = CompileRowExpr(fs.Expr); err != nil {
			return nil, err
		}
	}
	out := make([]Row, 0, len(rows))
	for _, u := range rows {
		rank := RankCaseSensitiveEqual
		if fs.GlobalQuery != "" {
			rank = e.rowRank(u, fs.GlobalQuery)
			if rank < e.threshold {
				continue
			}
		}
		if !e.matchColumns(u, fs.Columns) {
			continue
		}
		if expr != nil && !expr.Match(u) {
			continue
		}
		out = append(out, Row{User: u, Rank: rank})
	}
	return out, nil
}

// rowRank is the best rank the query reaches across all text columns.
func (e *Engine) rowRank(u model.DerivedUser, query string) int {
	best := RankNoMatch
	for _, c := range e.cols {
		if r := RankValue(c.Value(u), query); r > best {
			best = r
			if best == RankCaseSensitiveEqual {
				break
			}
		}
	}
	return best
}

func (e *Engine) matchColumns(u model.DerivedUser, filters map[string]ColumnFilter) bool {
	for colID, f := range filters {
		c, ok := model.ColumnByID(colID)
		if !ok {
			continue
		}
		switch c.Filter {
		case model.FilterRange:
			v, ok := c.Num(u)
			if !ok {
				return false
			}
			if f.Min != nil && v < *f.Min {
				return false
			}
			if f.Max != nil && v > *f.Max {
				return false
			}
		case model.FilterDiscrete:
			if c.Value(u) != f.Value {
				return false
			}
		}
	}
	return true
}

// Facets lists the distinct values a discrete filter offers, computed from
// the currently filtered set so faceting composes with the other active
// filters. Empty values are dropped; the list is ascending and capped.
func Facets(rows []Row, col model.Column) []string {
	seen := map[string]struct{}{}
	for _, r := range rows {
		v := col.Value(r.User)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	if len(out) > maxFacetValues {
		out = out[:maxFacetValues]
	}
	return out
}

// FacetMinMax reports the numeric bounds present in the filtered set for a
// range column, for placeholder hints on the min/max inputs.
func FacetMinMax(rows []Row, col model.Column) (min, max float64, ok bool) {
	for _, r := range rows {
		v, has := col.Num(r.User)
		if !has {
			continue
		}
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}
