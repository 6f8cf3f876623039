package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"staffdeck/internal/engine"
	"staffdeck/internal/state"
)

func (m *Model) View() string {
	v := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderSubStatus(),
		m.styles.Status.Render(m.renderStatus()),
	)
	if m.modalActive {
		// Dim the background content while keeping it visible
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

func (m *Model) renderStatus() string {
	parts := []string{fmt.Sprintf("rows:%d/%d", len(m.rows), m.st.Len())}
	if len(m.rows) > 0 {
		parts = append(parts, fmt.Sprintf("sel:%d/%d", m.selIdx+1, len(m.rows)))
	}
	for _, op := range []state.Op{state.OpLoad, state.OpAdd, state.OpEdit, state.OpDelete} {
		slot := m.st.Slot(op)
		switch slot.Status {
		case state.StatusPending:
			parts = append(parts, m.spin.View()+op.String())
		case state.StatusFailed:
			parts = append(parts, m.styles.ErrText.Render(op.String()+": "+slot.Err))
		}
	}
	if m.pipeErr != "" {
		parts = append(parts, m.styles.ErrText.Render("expr: "+m.pipeErr))
	}
	parts = append(parts, "[?]=help")
	if m.lastMsg != "" {
		parts = append(parts, m.lastMsg)
	}
	return strings.Join(parts, " | ")
}

// renderSubStatus is the line above the status bar: the active inline input,
// or a summary of the filters currently applied.
func (m *Model) renderSubStatus() string {
	switch m.inlineMode {
	case inlineSearch:
		return fmt.Sprintf("search: %s    [enter]=done [esc]=clear", m.search.View())
	case inlineFilter:
		hint := ""
		if facets := engine.Facets(m.rows, m.filterCol); len(facets) > 0 {
			shown := facets
			if len(shown) > 6 {
				shown = shown[:6]
			}
			hint = " (" + strings.Join(shown, ", ")
			if len(facets) > len(shown) {
				hint += ", ..."
			}
			hint += ")"
		}
		return fmt.Sprintf("filter %s%s: %s    [enter]=apply [esc]=cancel", m.filterCol.Label, hint, m.search.View())
	case inlineRange:
		hint := ""
		if lo, hi, ok := engine.FacetMinMax(m.rows, m.filterCol); ok {
			hint = fmt.Sprintf(" (%g..%g)", lo, hi)
		}
		return fmt.Sprintf("filter %s min..max%s: %s    [enter]=apply [esc]=cancel", m.filterCol.Label, hint, m.search.View())
	case inlineExpr:
		return fmt.Sprintf("expr: %s    e.g. age > 30 && country == 'Chile'    [enter]=apply [esc]=cancel", m.search.View())
	}
	if m.fs.Active() {
		parts := []string{}
		if m.fs.GlobalQuery != "" {
			parts = append(parts, fmt.Sprintf("search=%q", m.fs.GlobalQuery))
		}
		ids := make([]string, 0, len(m.fs.Columns))
		for id := range m.fs.Columns {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			f := m.fs.Columns[id]
			switch {
			case f.Value != "":
				parts = append(parts, fmt.Sprintf("%s=%q", id, f.Value))
			default:
				lo, hi := "", ""
				if f.Min != nil {
					lo = fmt.Sprintf("%g", *f.Min)
				}
				if f.Max != nil {
					hi = fmt.Sprintf("%g", *f.Max)
				}
				parts = append(parts, fmt.Sprintf("%s=%s..%s", id, lo, hi))
			}
		}
		if m.fs.Expr != "" {
			parts = append(parts, "expr="+m.fs.Expr)
		}
		return "filters: " + strings.Join(parts, "  ") + "    [F]=clear"
	}
	if m.termWidth > 0 {
		return strings.Repeat(" ", m.termWidth)
	}
	return ""
}
