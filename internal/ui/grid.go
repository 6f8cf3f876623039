package ui

import (
	"fmt"
	"strings"
	"time"

	"staffdeck/internal/engine"
	"staffdeck/internal/model"
	"staffdeck/internal/state"
	"staffdeck/internal/util/logx"
)

// refreshRows reruns the full derive/filter/sort pipeline over the canonical
// list and restores the selection by record id afterwards.
func (m *Model) refreshRows() {
	ss := m.sort
	if ss.ColumnID == "" && m.fs.GlobalQuery != "" {
		// No explicit sort while searching: order by match closeness.
		ss = engine.SortState{ColumnID: engine.SortRank, Dir: engine.DirAsc}
	}
	rows, err := m.pipe.Run(m.st.Users(), time.Now(), *m.fs, ss)
	if err != nil {
		m.pipeErr = err.Error()
		logx.Warnf("pipeline: %v", err)
		return
	}
	m.pipeErr = ""
	m.rows = rows
	m.keys = engine.Keys(rows)

	// Re-anchor the selection to the same record if it survived the refresh.
	idx := -1
	if m.selID != "" {
		for i, k := range m.keys {
			if k == m.selID {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		idx = m.selIdx
		if idx >= len(m.rows) {
			idx = len(m.rows) - 1
		}
		if idx < 0 {
			idx = 0
		}
	}
	m.applySelection(idx)
	m.scroll = m.win.ClampScroll(m.keys, m.scroll, m.bodyHeight())
	m.ensureSelVisible()
}

// applySelection points the cursor at idx and keeps row heights in step:
// exactly the selected row carries the expanded detail card height.
func (m *Model) applySelection(idx int) {
	if len(m.rows) == 0 {
		m.selIdx, m.selID = 0, ""
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.rows) {
		idx = len(m.rows) - 1
	}
	if m.selID != "" && m.selID != m.rows[idx].User.ID {
		m.win.Reset(m.selID)
	}
	m.selIdx = idx
	m.selID = m.rows[idx].User.ID
	m.win.Measure(m.selID, len(m.cardLines(m.rows[idx].User)))
}

func (m *Model) moveSelection(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.applySelection(m.selIdx + delta)
	m.ensureSelVisible()
}

// ensureSelVisible scrolls just enough to bring the selected row fully into
// the viewport.
func (m *Model) ensureSelVisible() {
	if len(m.keys) == 0 {
		m.scroll = 0
		return
	}
	vp := m.bodyHeight()
	top := m.win.OffsetOf(m.keys, m.selIdx)
	bottom := top + m.win.HeightOf(m.keys[m.selIdx])
	if top < m.scroll {
		m.scroll = top
	} else if bottom > m.scroll+vp {
		m.scroll = bottom - vp
	}
	m.scroll = m.win.ClampScroll(m.keys, m.scroll, vp)
}

// bodyHeight is the grid viewport: everything minus header and two status
// lines.
func (m *Model) bodyHeight() int {
	h := m.termHeight - 3
	if h < 1 {
		h = 1
	}
	return h
}

// visibleCols returns the column slice that fits the terminal starting at
// colOffset, and keeps the selected column inside it.
func (m *Model) visibleCols() []model.Column {
	if m.selCol < m.colOffset {
		m.colOffset = m.selCol
	}
	m.fitCols()
	for m.selCol >= m.colOffset+m.maxCols && m.colOffset < len(m.cols)-1 {
		m.colOffset++
		m.fitCols()
	}
	end := m.colOffset + m.maxCols
	if end > len(m.cols) {
		end = len(m.cols)
	}
	return m.cols[m.colOffset:end]
}

func (m *Model) fitCols() {
	width := m.termWidth
	if width <= 0 {
		width = 120
	}
	used := 2 // selection marker and its gutter
	count := 0
	for i := m.colOffset; i < len(m.cols); i++ {
		need := m.cols[i].Width + 1
		if used+need > width {
			break
		}
		used += need
		count++
	}
	if count < 1 {
		count = 1
	}
	m.maxCols = count
}

func (m *Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("  ")
	for i, c := range m.visibleCols() {
		abs := m.colOffset + i
		label := c.Label
		if m.sort.ColumnID == c.ID {
			switch m.sort.Dir {
			case engine.DirAsc:
				label += " ↑"
			case engine.DirDesc:
				label += " ↓"
			}
		}
		if abs == m.selCol {
			b.WriteString(m.styles.HeaderSel.Render(cell("«"+label+"»", c.Width)))
		} else {
			b.WriteString(m.styles.Header.Render(cell(label, c.Width)))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// renderBody materializes only the window the scroll position needs and
// slices it to the exact viewport lines.
func (m *Model) renderBody() string {
	vp := m.bodyHeight()
	if len(m.rows) == 0 {
		empty := "no matching employees"
		if m.st.Busy(state.OpLoad) {
			empty = "loading..."
		}
		lines := make([]string, vp)
		lines[0] = m.styles.Help.Render("  " + empty)
		return strings.Join(lines, "\n")
	}
	view := m.win.Compute(m.keys, m.scroll, vp)
	var lines []string
	for _, p := range view.Rows {
		if p.Index == m.selIdx {
			lines = append(lines, m.renderCard(m.rows[p.Index])...)
		} else {
			lines = append(lines, m.renderRow(m.rows[p.Index]))
		}
	}
	// Drop overscan lines above the viewport, then trim or pad to height.
	if len(view.Rows) > 0 {
		skip := m.scroll - view.Rows[0].Offset
		if skip > 0 && skip < len(lines) {
			lines = lines[skip:]
		}
	}
	if len(lines) > vp {
		lines = lines[:vp]
	}
	for len(lines) < vp {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r engine.Row) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, c := range m.visibleCols() {
		b.WriteString(cell(c.Value(r.User), c.Width))
		b.WriteString(" ")
	}
	return b.String()
}

// renderCard paints the selected row as an expanded detail card. The first
// line mirrors the grid row so the column layout stays readable.
func (m *Model) renderCard(r engine.Row) []string {
	lines := m.cardLines(r.User)
	out := make([]string, len(lines))
	out[0] = m.styles.RowSel.Render("▸ " + strings.TrimPrefix(m.renderRow(r), "  "))
	for i := 1; i < len(lines); i++ {
		out[i] = m.styles.CardLabel.Render(lines[i])
	}
	return out
}

// cardLines is the sole definition of the card's contents; the window
// measures row height from its length.
func (m *Model) cardLines(u model.DerivedUser) []string {
	loc := u.City
	if u.Country != "" {
		loc += ", " + u.Country
	}
	addr := u.Address
	if addr == "" {
		addr = "-"
	}
	phone := u.Phone
	if phone == "" {
		phone = "-"
	}
	job := u.JobTitle
	if job == "" {
		job = "-"
	}
	return []string{
		"", // replaced by the highlighted grid row
		fmt.Sprintf("    %s %s, %d (%s)", u.FirstName, u.LastName, u.Age, u.Gender),
		fmt.Sprintf("    job:     %s", job),
		fmt.Sprintf("    born:    %s", model.FormatBirthDate(u.BirthDate)),
		fmt.Sprintf("    email:   %s   phone: %s", u.Email, phone),
		fmt.Sprintf("    address: %s, %s", addr, loc),
		fmt.Sprintf("    id:      %s", u.ID),
	}
}

func (m *Model) selectedRow() (engine.Row, bool) {
	if m.selIdx < 0 || m.selIdx >= len(m.rows) {
		return engine.Row{}, false
	}
	return m.rows[m.selIdx], true
}

func (m *Model) selectedColumn() model.Column {
	if m.selCol < 0 || m.selCol >= len(m.cols) {
		return m.cols[0]
	}
	return m.cols[m.selCol]
}
