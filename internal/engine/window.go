package engine

// Window computes which rows of the filtered/sorted sequence must be
// materialized for the current scroll position. Heights are in terminal
// lines: every row starts at the estimate and may later report a measured
// height (an expanded detail row), keyed by record id so a measurement never
// sticks to the wrong logical row after a filter or sort reorders indexes.
type Window struct {
	estimate int
	overscan int
	heights  map[string]int
}

func NewWindow(estimate, overscan int) *Window {
	if estimate < 1 {
		estimate = 1
	}
	if overscan < 0 {
		overscan = 0
	}
	return &Window{estimate: estimate, overscan: overscan, heights: map[string]int{}}
}

// Measure records a row's real height. Returns true when the value changed,
// which obliges the caller to recompute the view.
func (w *Window) Measure(key string, height int) bool {
	if height < 1 {
		height = 1
	}
	if w.heights[key] == height {
		return false
	}
	w.heights[key] = height
	return true
}

// Reset drops a single measurement, falling back to the estimate.
func (w *Window) Reset(key string) { delete(w.heights, key) }

func (w *Window) height(key string) int {
	if h, ok := w.heights[key]; ok {
		return h
	}
	return w.estimate
}

// Placement is one materialized row: its index in the sequence, its identity
// key, and its absolute offset (cumulative height of all preceding rows).
type Placement struct {
	Index  int
	Key    string
	Offset int
	Height int
}

// View is the computed window over the sequence.
type View struct {
	// Start/End bound the materialized rows, overscan included: [Start, End).
	Start, End int
	Rows       []Placement
	// TotalHeight is the virtual height of the full sequence, so scroll
	// bounds behave as if every row were rendered.
	TotalHeight int
}

// Compute returns the minimal contiguous row range covering the viewport at
// scrollOffset, expanded by the overscan margin on each side and clamped to
// [0, len(keys)). It must be re-run whenever the scroll position, the
// sequence, or any measured height changes.
func (w *Window) Compute(keys []string, scrollOffset, viewportHeight int) View {
	n := len(keys)
	v := View{}
	offsets := make([]int, n+1)
	for i, k := range keys {
		offsets[i+1] = offsets[i] + w.height(k)
	}
	v.TotalHeight = offsets[n]
	if n == 0 || viewportHeight <= 0 {
		return v
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if max := v.TotalHeight - viewportHeight; scrollOffset > max {
		if max < 0 {
			max = 0
		}
		scrollOffset = max
	}
	// First row whose bottom edge is past the top of the viewport.
	start := 0
	for start < n && offsets[start+1] <= scrollOffset {
		start++
	}
	// One past the last row whose top edge is above the bottom of the viewport.
	end := start
	for end < n && offsets[end] < scrollOffset+viewportHeight {
		end++
	}
	start -= w.overscan
	end += w.overscan
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	v.Start, v.End = start, end
	v.Rows = make([]Placement, 0, end-start)
	for i := start; i < end; i++ {
		v.Rows = append(v.Rows, Placement{Index: i, Key: keys[i], Offset: offsets[i], Height: offsets[i+1] - offsets[i]})
	}
	return v
}

// ClampScroll bounds a scroll offset to the sequence's virtual height.
func (w *Window) ClampScroll(keys []string, scrollOffset, viewportHeight int) int {
	total := 0
	for _, k := range keys {
		total += w.height(k)
	}
	max := total - viewportHeight
	if max < 0 {
		max = 0
	}
	if scrollOffset > max {
		scrollOffset = max
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	return scrollOffset
}

// OffsetOf returns the absolute offset of the row at index, for scrolling a
// selected row into view.
func (w *Window) OffsetOf(keys []string, index int) int {
	if index < 0 {
		return 0
	}
	off := 0
	for i := 0; i < index && i < len(keys); i++ {
		off += w.height(keys[i])
	}
	return off
}

// HeightOf reports the current (measured or estimated) height for a key.
func (w *Window) HeightOf(key string) int { return w.height(key) }
