package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"staffdeck/internal/ai"
	"staffdeck/internal/config"
	"staffdeck/internal/engine"
	"staffdeck/internal/model"
	"staffdeck/internal/state"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalCharts
	modalInspector
	modalLogs
	modalConfirmDelete
	modalForm
	modalSummary
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineSearch
	inlineFilter
	inlineRange
	inlineExpr
)

type Model struct {
	ctx context.Context
	cfg *config.Config

	// Data
	st    *state.Store
	coord *state.Coordinator
	cols  []model.Column
	pipe  *engine.Pipeline
	fs    *engine.FilterState
	sort  engine.SortState
	rows  []engine.Row
	keys  []string

	// Windowed rendering
	win    *engine.Window
	scroll int
	selIdx int
	selID  string

	// Column selection (header)
	selCol    int
	colOffset int
	maxCols   int

	// Inputs
	search textinput.Model
	spin   spinner.Model
	deb    *engine.Debouncer

	keymap     KeyMap
	styles     Styles
	termWidth  int
	termHeight int
	lastMsg    string
	pipeErr    string

	inlineMode inlineMode
	// Column captured when a per-column filter prompt opened; the prompt
	// keeps targeting it even if the header selection moves.
	filterCol model.Column

	// Modal popup
	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string

	// Help menu state
	helpItems []helpItem
	helpSel   int

	// Form dialog state
	form userFormState

	// Pending delete target
	deleteTarget model.DerivedUser

	aiClient *ai.OpenAIClient
	aiBusy   bool
}

type helpItem struct {
	group string
	text  string
	key   tea.Key
}

// debounceMsg fires after the debounce delay; stale tokens are ignored.
type debounceMsg struct{ token uint64 }

// summaryMsg carries the AI summary result back to the event loop.
type summaryMsg struct {
	text string
	err  string
}

func keyCmd(k tea.Key) tea.Cmd {
	return func() tea.Msg {
		if k.Type == tea.KeyRunes {
			return tea.KeyMsg{Type: k.Type, Runes: k.Runes}
		}
		return tea.KeyMsg{Type: k.Type}
	}
}

func keyLabel(k tea.Key) string {
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			r := k.Runes[0]
			if r == ' ' {
				return "space"
			}
			return string(r)
		}
		return strings.ToLower(string(k.Runes))
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeyTab:
		return "tab"
	case tea.KeyShiftTab:
		return "shift-tab"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyPgUp:
		return "pgup"
	case tea.KeyPgDown:
		return "pgdown"
	default:
		return strings.ToLower(k.String())
	}
}
