package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Search      tea.Key
	Filter      tea.Key
	ClearFilter tea.Key
	Expr        tea.Key
	Sort        tea.Key
	Add         tea.Key
	Edit        tea.Key
	Delete      tea.Key
	Charts      tea.Key
	Inspector   tea.Key
	AppLogs     tea.Key
	Export      tea.Key
	Summarize   tea.Key
	Top         tea.Key
	Bottom      tea.Key
	Help        tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'/'}},
		Filter:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		ClearFilter: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Expr:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		Sort:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'s'}},
		Add:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'a'}},
		Edit:        tea.Key{Type: tea.KeyEnter},
		Delete:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'d'}},
		Charts:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}},
		Inspector:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'v'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Export:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'E'}},
		Summarize:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'i'}},
		Top:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Bottom:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
