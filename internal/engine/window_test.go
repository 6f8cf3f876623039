package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("rec-%03d", i)
	}
	return keys
}

func TestWindowVisibleRangeWithinBounds(t *testing.T) {
	w := NewWindow(1, 5)
	keys := windowKeys(200)
	for _, offset := range []int{0, 1, 57, 150, 195, 199, 500, 100000} {
		v := w.Compute(keys, offset, 20)
		assert.GreaterOrEqual(t, v.Start, 0)
		assert.LessOrEqual(t, v.End, len(keys))
		assert.LessOrEqual(t, v.Start, v.End)
		for _, p := range v.Rows {
			assert.GreaterOrEqual(t, p.Index, 0)
			assert.Less(t, p.Index, len(keys))
		}
	}
}

func TestWindowScrollToEndDoesNotOverrun(t *testing.T) {
	w := NewWindow(1, 5)
	keys := windowKeys(50)
	v := w.Compute(keys, 1000, 10)
	require.NotEmpty(t, v.Rows)
	assert.Equal(t, 50, v.End)
	assert.Equal(t, 50, v.TotalHeight)
	last := v.Rows[len(v.Rows)-1]
	assert.Equal(t, 49, last.Index)
	assert.Equal(t, 49, last.Offset)
}

func TestWindowOverscan(t *testing.T) {
	w := NewWindow(1, 5)
	keys := windowKeys(100)
	v := w.Compute(keys, 40, 10)
	// Viewport covers rows [40,50); overscan widens by 5 per side.
	assert.Equal(t, 35, v.Start)
	assert.Equal(t, 55, v.End)
}

func TestWindowTotalHeightUsesEstimates(t *testing.T) {
	w := NewWindow(3, 0)
	keys := windowKeys(10)
	v := w.Compute(keys, 0, 9)
	assert.Equal(t, 30, v.TotalHeight)
	assert.Equal(t, 0, v.Start)
	assert.Equal(t, 3, v.End)
}

func TestWindowMeasuredHeightsShiftOffsets(t *testing.T) {
	w := NewWindow(1, 0)
	keys := windowKeys(5)
	require.True(t, w.Measure("rec-001", 4))
	assert.False(t, w.Measure("rec-001", 4), "same height is not a change")

	v := w.Compute(keys, 0, 100)
	assert.Equal(t, 8, v.TotalHeight)
	// Offsets are cumulative heights of all preceding rows.
	assert.Equal(t, 0, v.Rows[0].Offset)
	assert.Equal(t, 1, v.Rows[1].Offset)
	assert.Equal(t, 4, v.Rows[1].Height)
	assert.Equal(t, 5, v.Rows[2].Offset)

	w.Reset("rec-001")
	v = w.Compute(keys, 0, 100)
	assert.Equal(t, 5, v.TotalHeight)
}

func TestWindowMeasurementsFollowKeyNotIndex(t *testing.T) {
	w := NewWindow(1, 0)
	w.Measure("b", 7)

	v := w.Compute([]string{"a", "b", "c"}, 0, 50)
	assert.Equal(t, 7, v.Rows[1].Height)

	// After a reorder the measurement travels with the record, not the slot.
	v = w.Compute([]string{"b", "c", "a"}, 0, 50)
	assert.Equal(t, 7, v.Rows[0].Height)
	assert.Equal(t, 1, v.Rows[1].Height)
}

func TestWindowEmptySequence(t *testing.T) {
	w := NewWindow(1, 5)
	v := w.Compute(nil, 25, 10)
	assert.Zero(t, v.TotalHeight)
	assert.Empty(t, v.Rows)
	assert.Equal(t, 0, v.Start)
	assert.Equal(t, 0, v.End)
}

func TestClampScroll(t *testing.T) {
	w := NewWindow(1, 0)
	keys := windowKeys(30)
	assert.Equal(t, 0, w.ClampScroll(keys, -5, 10))
	assert.Equal(t, 20, w.ClampScroll(keys, 999, 10))
	assert.Equal(t, 7, w.ClampScroll(keys, 7, 10))
	assert.Equal(t, 0, w.ClampScroll(keys[:3], 5, 10))
}

func TestOffsetOf(t *testing.T) {
	w := NewWindow(2, 0)
	keys := windowKeys(10)
	w.Measure("rec-000", 5)
	assert.Equal(t, 0, w.OffsetOf(keys, 0))
	assert.Equal(t, 5, w.OffsetOf(keys, 1))
	assert.Equal(t, 7, w.OffsetOf(keys, 2))
}
