package engine

import (
	"time"

	"staffdeck/internal/model"
)

// Pipeline is the synchronous recompute chain: canonical list → derive →
// filter → sort. It runs in full on every canonical change or filter/sort
// input, independent of any rendering framework; the view window is applied
// afterwards by whoever owns the scroll position.
type Pipeline struct {
	cols   []model.Column
	engine *Engine
}

func NewPipeline(cols []model.Column) *Pipeline {
	return &Pipeline{cols: cols, engine: NewEngine(cols)}
}

// Run derives, filters, and sorts the canonical list with a single reference
// "now". The returned rows are a fresh slice; callers never see canonical
// state that has not been re-filtered and re-sorted.
func (p *Pipeline) Run(users []model.User, now time.Time, fs FilterState, ss SortState) ([]Row, error) {
	derived := model.DeriveUsers(users, now)
	rows, err := p.engine.Apply(derived, fs)
	if err != nil {
		return nil, err
	}
	Sort(rows, ss)
	return rows, nil
}

// Keys projects the row identities in order, for the view window. Rows are
// always keyed by record id, never by index, so in-flight measurements stay
// attached to the right logical row across data refreshes.
func Keys(rows []Row) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.User.ID
	}
	return keys
}
