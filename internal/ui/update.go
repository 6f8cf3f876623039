package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"staffdeck/internal/engine"
	"staffdeck/internal/export"
	"staffdeck/internal/forms"
	"staffdeck/internal/model"
	"staffdeck/internal/state"
	"staffdeck/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.fitCols()
		m.ensureSelVisible()
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil

	case state.Event:
		m.st.Apply(msg)
		switch ev := msg.(type) {
		case state.LoadDone:
			m.lastMsg = fmt.Sprintf("loaded %d employees", len(ev.Users))
		case state.AddDone:
			m.lastMsg = fmt.Sprintf("added %s %s", ev.User.FirstName, ev.User.LastName)
			m.selID = ev.User.ID
			m.closeFormModal()
		case state.EditDone:
			m.lastMsg = fmt.Sprintf("saved %s %s", ev.User.FirstName, ev.User.LastName)
			m.closeFormModal()
		case state.DeleteDone:
			m.lastMsg = "employee deleted"
			if m.selID == ev.ID {
				m.win.Reset(m.selID)
				m.selID = ""
			}
		case state.OpFailed:
			m.lastMsg = ""
			// A failed save lands inside the still-open dialog so the user
			// can fix and retry without retyping.
			if m.formModalOpen() && ev.Op == m.form.op() {
				m.form.submitErr = ev.Err.Error()
			}
		}
		m.refreshRows()
		return m, nil

	case debounceMsg:
		if !m.deb.Current(msg.token) {
			return m, nil
		}
		m.applyInline(false)
		return m, nil

	case summaryMsg:
		m.aiBusy = false
		if msg.err != "" {
			m.modalBody = m.styles.ErrText.Render("OpenAI failed: " + msg.err)
			logx.Warnf("openai: summary failed: %s", msg.err)
		} else {
			m.modalBody = msg.text
		}
		if m.modalActive && m.modalKind == modalSummary {
			m.modalVP.SetContent(m.modalBody)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.modalActive {
			return m.updateModal(msg)
		}
		if m.inlineMode != inlineNone {
			if handled, cmd := m.updateInline(msg); handled {
				return m, cmd
			}
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalKind {
	case modalForm:
		return m.updateForm(msg)

	case modalConfirmDelete:
		if msg.Type == tea.KeyEnter || (msg.Type == tea.KeyRunes && msg.String() == "y") {
			id := m.deleteTarget.ID
			m.closeModal()
			m.st.Apply(state.OpStarted{Op: state.OpDelete})
			return m, func() tea.Msg { return m.coord.Delete(m.ctx, id) }
		}
		if msg.Type == tea.KeyEsc || (msg.Type == tea.KeyRunes && msg.String() == "n") {
			m.closeModal()
		}
		return m, nil

	case modalHelp:
		switch {
		case msg.Type == tea.KeyUp:
			if m.helpSel > 0 {
				m.helpSel--
				m.modalVP.SetContent(m.renderHelp())
			}
		case msg.Type == tea.KeyDown:
			if m.helpSel+1 < len(m.helpItems) {
				m.helpSel++
				m.modalVP.SetContent(m.renderHelp())
			}
		case msg.Type == tea.KeyEnter:
			if len(m.helpItems) > 0 {
				it := m.helpItems[m.helpSel]
				m.closeModal()
				return m, keyCmd(it.key)
			}
		case msg.Type == tea.KeyEsc,
			msg.Type == tea.KeyRunes && (msg.String() == "q" || msg.String() == "?"):
			m.closeModal()
		}
		return m, nil
	}

	// Read-only modals: close, copy, or scroll.
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		m.closeModal()
		return m, nil
	}
	if msg.Type == tea.KeyRunes && (msg.String() == "c" || msg.String() == "C") {
		copyToClipboard(m.modalBody)
		m.lastMsg = "copied to clipboard"
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.closeModal()
		return m, nil
	}
	// While the save is in flight the dialog's own controls are frozen;
	// the completion event reopens them (failure) or closes it (success).
	if m.st.Busy(m.form.op()) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	case tea.KeyEnter:
		return m.submitForm()
	}
	var cmd tea.Cmd
	f := &m.form.fields[m.form.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

// submitForm validates and fires the mutation. The dialog stays open until
// the completion event arrives: success closes it, failure renders the
// message inline with every entered value intact.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form.toForm()
	if errs := f.Validate(time.Now()); len(errs) > 0 {
		m.form.errs = errs
		return m, nil
	}
	m.form.errs = map[string]string{}
	m.form.submitErr = ""
	if m.form.editing {
		patch := f.Patch(m.form.orig)
		if len(patch) == 0 {
			m.closeModal()
			m.lastMsg = "no changes"
			return m, nil
		}
		id := m.form.orig.ID
		m.st.Apply(state.OpStarted{Op: state.OpEdit})
		return m, func() tea.Msg { return m.coord.Edit(m.ctx, id, patch) }
	}
	u := f.ToUser()
	m.st.Apply(state.OpStarted{Op: state.OpAdd})
	return m, func() tea.Msg { return m.coord.Add(m.ctx, u) }
}

func (m *Model) formModalOpen() bool {
	return m.modalActive && m.modalKind == modalForm
}

func (m *Model) closeFormModal() {
	if m.formModalOpen() {
		m.closeModal()
	}
}

// updateInline handles the bottom-line inputs. It reports whether the key
// was consumed; navigation keys fall through to the grid.
func (m *Model) updateInline(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.applyInline(true)
		m.inlineMode = inlineNone
		return true, nil
	case tea.KeyEsc:
		if m.inlineMode == inlineSearch {
			m.fs.GlobalQuery = ""
			m.refreshRows()
		}
		m.inlineMode = inlineNone
		m.search.SetValue("")
		return true, nil
	case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete, tea.KeySpace, tea.KeyLeft, tea.KeyRight:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.inlineMode == inlineExpr {
			// Expressions only apply on enter; partial input rarely compiles.
			return true, cmd
		}
		token := m.deb.Arm()
		tick := tea.Tick(m.deb.Delay(), func(time.Time) tea.Msg { return debounceMsg{token} })
		return true, tea.Batch(cmd, tick)
	}
	return false, nil
}

// applyInline commits the current inline input to the filter state. Called
// from the debounce timer for live typing and directly on enter.
func (m *Model) applyInline(final bool) {
	v := strings.TrimSpace(m.search.Value())
	switch m.inlineMode {
	case inlineSearch:
		m.fs.GlobalQuery = v
	case inlineFilter:
		m.fs.SetDiscrete(m.filterCol.ID, v)
	case inlineRange:
		min, max, err := parseRange(v)
		if err != nil {
			if final {
				m.lastMsg = err.Error()
			}
			return
		}
		m.fs.SetRange(m.filterCol.ID, min, max)
	case inlineExpr:
		if !final {
			return
		}
		m.fs.Expr = v
	default:
		return
	}
	m.refreshRows()
}

// parseRange reads "min..max" with either side optional; empty input clears
// both bounds.
func parseRange(v string) (*float64, *float64, error) {
	if v == "" {
		return nil, nil, nil
	}
	lo, hi, found := strings.Cut(v, "..")
	if !found {
		// A single number means an exact bound on both sides.
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("range must look like 30..45")
		}
		return &f, &f, nil
	}
	var min, max *float64
	if s := strings.TrimSpace(lo); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad minimum %q", s)
		}
		min = &f
	}
	if s := strings.TrimSpace(hi); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad maximum %q", s)
		}
		max = &f
	}
	return min, max, nil
}

func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keymap.Search):
		m.inlineMode = inlineSearch
		m.search.SetValue(m.fs.GlobalQuery)
		m.search.Focus()
		return m, nil

	case keyMatches(msg, m.keymap.Filter):
		col := m.selectedColumn()
		if col.Filter == model.FilterNone {
			m.lastMsg = fmt.Sprintf("%s is not filterable", col.Label)
			return m, nil
		}
		m.filterCol = col
		cur := m.fs.Columns[col.ID]
		if col.Filter == model.FilterRange {
			m.inlineMode = inlineRange
			m.search.SetValue(rangeText(cur.Min, cur.Max))
		} else {
			m.inlineMode = inlineFilter
			m.search.SetValue(cur.Value)
		}
		m.search.Focus()
		return m, nil

	case keyMatches(msg, m.keymap.Expr):
		m.inlineMode = inlineExpr
		m.search.SetValue(m.fs.Expr)
		m.search.Focus()
		return m, nil

	case keyMatches(msg, m.keymap.ClearFilter):
		m.fs.ClearAll()
		m.pipeErr = ""
		m.refreshRows()
		m.lastMsg = "filters cleared"
		return m, nil

	case keyMatches(msg, m.keymap.Sort):
		col := m.selectedColumn()
		if !col.Sortable {
			return m, nil
		}
		m.sort = engine.NextSort(m.sort, col.ID)
		m.refreshRows()
		return m, nil

	case keyMatches(msg, m.keymap.Add):
		m.form = newUserFormState(forms.UserForm{}, false, model.User{})
		m.modalActive = true
		m.modalKind = modalForm
		m.modalTitle = "Add employee"
		m.resizeModal()
		return m, nil

	case keyMatches(msg, m.keymap.Edit):
		r, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.form = newUserFormState(forms.FromUser(r.User.User), true, r.User.User)
		m.modalActive = true
		m.modalKind = modalForm
		m.modalTitle = "Edit employee"
		m.resizeModal()
		return m, nil

	case keyMatches(msg, m.keymap.Delete):
		m.openDeleteModal()
		return m, nil

	case keyMatches(msg, m.keymap.Charts):
		m.openChartsModal()
		return m, nil

	case keyMatches(msg, m.keymap.Inspector):
		m.openInspectorModal()
		return m, nil

	case keyMatches(msg, m.keymap.AppLogs):
		m.openAppLogsModal()
		return m, nil

	case keyMatches(msg, m.keymap.Export):
		format := m.cfg.ExportFormat
		if format == "" {
			format = "csv"
		}
		out := m.cfg.ExportOut
		if out == "" {
			out = "staffdeck-export." + format
		}
		var err error
		switch format {
		case "json":
			err = export.ToNDJSON(out, m.rows)
		default:
			err = export.ToCSV(out, m.cols, m.rows)
		}
		if err != nil {
			m.lastMsg = "export failed: " + err.Error()
			logx.Warnf("export: %v", err)
		} else {
			m.lastMsg = fmt.Sprintf("exported %d rows to %s (%s)", len(m.rows), out, format)
			logx.Infof("export: wrote %d rows to %s (%s)", len(m.rows), out, format)
		}
		return m, nil

	case keyMatches(msg, m.keymap.Summarize):
		if m.aiClient == nil {
			m.lastMsg = "Summarize (OpenAI) unavailable in offline mode"
			return m, nil
		}
		rows := m.rows
		m.aiBusy = true
		m.openSummaryModal()
		return m, func() tea.Msg {
			text, err := m.aiClient.SummarizeView(m.ctx, rows)
			if err != nil {
				return summaryMsg{err: err.Error()}
			}
			return summaryMsg{text: text}
		}

	case keyMatches(msg, m.keymap.Help):
		m.openHelpModal()
		return m, nil

	case keyMatches(msg, m.keymap.Top):
		m.applySelection(0)
		m.ensureSelVisible()
		return m, nil

	case keyMatches(msg, m.keymap.Bottom):
		m.applySelection(len(m.rows) - 1)
		m.ensureSelVisible()
		return m, nil

	case msg.Type == tea.KeyUp:
		m.moveSelection(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.moveSelection(1)
		return m, nil
	case msg.Type == tea.KeyPgUp:
		m.moveSelection(-m.bodyHeight())
		return m, nil
	case msg.Type == tea.KeyPgDown:
		m.moveSelection(m.bodyHeight())
		return m, nil

	case msg.Type == tea.KeyLeft:
		if m.selCol > 0 {
			m.selCol--
		}
		return m, nil
	case msg.Type == tea.KeyRight:
		if m.selCol+1 < len(m.cols) {
			m.selCol++
		}
		return m, nil

	case keyMatches(msg, m.keymap.Quit), msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func rangeText(min, max *float64) string {
	if min == nil && max == nil {
		return ""
	}
	lo, hi := "", ""
	if min != nil {
		lo = strconv.FormatFloat(*min, 'f', -1, 64)
	}
	if max != nil {
		hi = strconv.FormatFloat(*max, 'f', -1, 64)
	}
	return lo + ".." + hi
}
