package ui

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"staffdeck/internal/engine"
	"staffdeck/internal/model"
	"staffdeck/internal/util/logx"
)

func overlay(base, overlay string) string {
	// Draw overlay on top of base by replacing lines where overlay has content.
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(overlay, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		// Whitespace-only overlay lines are transparent
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyToClipboard tries to copy text using OSC52 (works in many terminals).
func copyToClipboard(s string) {
	s = stripANSI(s)
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	payload := fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer f.Close()
		_, _ = f.WriteString(payload)
		return
	}
	fmt.Fprint(os.Stdout, payload)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// colorBar returns a bar with simple red intensity for larger ratios.
func colorBar(width int, val, max float64) string {
	if width <= 0 {
		return ""
	}
	r := 0.0
	if max > 0 {
		r = val / max
	}
	color := 226 - int(r*30) // yellow->red
	if color < 196 {
		color = 196
	}
	bar := strings.Repeat("▇", width)
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, bar)
}

var ageGroups = []struct {
	label    string
	min, max int
}{
	{"under 20", 0, 19},
	{"20-29", 20, 29},
	{"30-39", 30, 39},
	{"40-49", 40, 49},
	{"50-59", 50, 59},
	{"60+", 60, 200},
}

// buildCharts renders the two workforce charts over the current filtered
// rows: age group split by gender, and headcount per country.
func buildCharts(rows []engine.Row) string {
	if len(rows) == 0 {
		return "No data in the current view"
	}
	var b strings.Builder

	// Age group by gender
	type pair struct{ male, female, other int }
	groups := make([]pair, len(ageGroups))
	maxc := 1
	for _, r := range rows {
		for i, g := range ageGroups {
			if r.User.Age < g.min || r.User.Age > g.max {
				continue
			}
			switch r.User.Gender {
			case model.GenderMale:
				groups[i].male++
			case model.GenderFemale:
				groups[i].female++
			default:
				groups[i].other++
			}
			break
		}
	}
	for _, p := range groups {
		for _, c := range []int{p.male, p.female, p.other} {
			if c > maxc {
				maxc = c
			}
		}
	}
	b.WriteString("Employees by age group and gender:\n")
	for i, g := range ageGroups {
		p := groups[i]
		if p.male+p.female+p.other == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%-9s", g.label))
		b.WriteString(genderBar("m", p.male, maxc))
		b.WriteString(genderBar("f", p.female, maxc))
		b.WriteString(genderBar("o", p.other, maxc))
		b.WriteByte('\n')
	}

	// Country headcount
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.User.Country]++
	}
	type kv struct {
		k string
		v int
	}
	arr := make([]kv, 0, len(counts))
	for k, v := range counts {
		arr = append(arr, kv{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].v != arr[j].v {
			return arr[i].v > arr[j].v
		}
		return arr[i].k < arr[j].k
	})
	maxc = arr[0].v
	b.WriteString("\nEmployees by country:\n")
	for _, it := range arr {
		width := int(math.Round(20 * float64(it.v) / float64(maxc)))
		b.WriteString(fmt.Sprintf("%-14s | %s (%d)\n", it.k, colorBar(width, float64(it.v), float64(maxc)), it.v))
	}
	return b.String()
}

func genderBar(tag string, count, max int) string {
	if count == 0 {
		return ""
	}
	width := int(math.Round(12 * float64(count) / float64(max)))
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("  %s %s (%d)", tag, colorBar(width, float64(count), float64(max)), count)
}

func (m *Model) buildHelpItems() []helpItem {
	km := m.keymap
	return []helpItem{
		{group: "Navigation", text: "Previous row", key: tea.Key{Type: tea.KeyUp}},
		{group: "Navigation", text: "Next row", key: tea.Key{Type: tea.KeyDown}},
		{group: "Navigation", text: "Page up", key: tea.Key{Type: tea.KeyPgUp}},
		{group: "Navigation", text: "Page down", key: tea.Key{Type: tea.KeyPgDown}},
		{group: "Navigation", text: "Go to top", key: km.Top},
		{group: "Navigation", text: "Go to bottom", key: km.Bottom},
		{group: "Navigation", text: "Previous column", key: tea.Key{Type: tea.KeyLeft}},
		{group: "Navigation", text: "Next column", key: tea.Key{Type: tea.KeyRight}},

		{group: "Filter", text: "Global search", key: km.Search},
		{group: "Filter", text: "Filter selected column", key: km.Filter},
		{group: "Filter", text: "Expression filter", key: km.Expr},
		{group: "Filter", text: "Clear all filters", key: km.ClearFilter},
		{group: "Filter", text: "Sort selected column", key: km.Sort},

		{group: "Records", text: "Add employee", key: km.Add},
		{group: "Records", text: "Edit selected", key: km.Edit},
		{group: "Records", text: "Delete selected", key: km.Delete},

		{group: "Views", text: "Charts", key: km.Charts},
		{group: "Views", text: "Inspector", key: km.Inspector},
		{group: "Views", text: "Application logs", key: km.AppLogs},

		{group: "Control", text: "Export view", key: km.Export},
		{group: "AI", text: "Summarize view (OpenAI)", key: km.Summarize},
		{group: "Control", text: "Help", key: km.Help},
		{group: "Control", text: "Quit", key: km.Quit},
	}
}

func (m *Model) renderHelp() string {
	if len(m.helpItems) == 0 {
		m.helpItems = m.buildHelpItems()
	}
	if m.helpSel < 0 {
		m.helpSel = 0
	}
	if m.helpSel >= len(m.helpItems) {
		m.helpSel = len(m.helpItems) - 1
	}
	lines := []string{"Shortcuts:"}
	currentGroup := ""
	lineIndexOfSel := 0
	for i, it := range m.helpItems {
		if it.group != currentGroup {
			currentGroup = it.group
			lines = append(lines, "")
			lines = append(lines, currentGroup+":")
		}
		prefix := "  "
		if i == m.helpSel {
			prefix = "> "
			lineIndexOfSel = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, keyLabel(it.key), it.text))
	}
	// Keep the selected line visible in the modal viewport
	if m.modalVP.Height > 0 {
		top := m.modalVP.YOffset
		bottom := top + m.modalVP.Height - 1
		if lineIndexOfSel <= top {
			if lineIndexOfSel-1 >= 0 {
				m.modalVP.YOffset = lineIndexOfSel - 1
			} else {
				m.modalVP.YOffset = 0
			}
		} else if lineIndexOfSel >= bottom {
			m.modalVP.YOffset = lineIndexOfSel - m.modalVP.Height + 2
			if m.modalVP.YOffset < 0 {
				m.modalVP.YOffset = 0
			}
		}
	}
	return m.styles.Help.Render(strings.Join(lines, "\n"))
}

func (m *Model) openHelpModal() {
	m.modalActive = true
	m.modalKind = modalHelp
	m.modalTitle = "Help"
	m.helpItems = m.buildHelpItems()
	m.helpSel = 0
	m.modalBody = m.renderHelp()
	m.resizeModal()
}

func (m *Model) openChartsModal() {
	m.modalActive = true
	m.modalKind = modalCharts
	m.modalTitle = fmt.Sprintf("Charts (%d employees)", len(m.rows))
	m.modalBody = buildCharts(m.rows)
	m.resizeModal()
}

func (m *Model) openInspectorModal() {
	r, ok := m.selectedRow()
	if !ok {
		return
	}
	m.modalActive = true
	m.modalKind = modalInspector
	m.modalTitle = "Employee"
	m.modalBody = colorizeUser(r.User, m.styles)
	m.resizeModal()
}

func (m *Model) openAppLogsModal() {
	m.modalActive = true
	m.modalKind = modalLogs
	m.modalTitle = "Application Logs"
	m.modalBody = logx.Dump()
	m.resizeModal()
}

func (m *Model) openDeleteModal() {
	r, ok := m.selectedRow()
	if !ok {
		return
	}
	m.deleteTarget = r.User
	m.modalActive = true
	m.modalKind = modalConfirmDelete
	m.modalTitle = "Delete employee"
	m.modalBody = fmt.Sprintf("Delete %s %s (%s)?\n\nThis cannot be undone.",
		r.User.FirstName, r.User.LastName, r.User.ID)
	m.resizeModal()
}

func (m *Model) openSummaryModal() {
	m.modalActive = true
	m.modalKind = modalSummary
	m.modalTitle = "AI Summary"
	m.modalBody = "Summarizing the current view..."
	m.resizeModal()
}

func (m *Model) closeModal() {
	m.modalActive = false
	m.modalKind = modalNone
}

func (m *Model) resizeModal() {
	w := m.termWidth - 6
	h := m.termHeight - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	content := ""
	switch m.modalKind {
	case modalHelp:
		m.modalVP.SetContent(m.renderHelp())
		content = m.modalVP.View() + "\n[esc]=close  [enter]=run"
	case modalForm:
		content = m.form.render(m.styles, m.st.Busy(m.form.op()))
	case modalConfirmDelete:
		content = m.modalBody + "\n\n[y/enter]=delete  [esc]=cancel"
	case modalInspector, modalCharts:
		content = m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	case modalSummary:
		body := m.modalVP.View()
		if m.aiBusy {
			body = m.spin.View() + " " + m.modalBody
		}
		content = body + "\n[esc/enter]=close  [c]=copy"
	case modalLogs:
		content = m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	default:
		content = m.modalVP.View() + "\n[esc/enter]=close"
	}
	boxW := m.termWidth - 6
	if boxW < 20 {
		boxW = 20
	}
	title := m.styles.PopupTitle.Render(m.modalTitle)
	body := m.styles.PopupBox.Width(boxW).Render(title + "\n" + content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}
