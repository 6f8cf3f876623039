package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base       lipgloss.Style
	Status     lipgloss.Style
	Header     lipgloss.Style
	HeaderSel  lipgloss.Style
	RowSel     lipgloss.Style
	CardBorder lipgloss.Style
	CardLabel  lipgloss.Style
	Help       lipgloss.Style
	ErrText    lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style

	JSONKey    lipgloss.Style
	JSONString lipgloss.Style
	JSONNumber lipgloss.Style
	JSONBool   lipgloss.Style
	JSONNull   lipgloss.Style
	JSONPunct  lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Header = lipgloss.NewStyle().Bold(true)
		s.HeaderSel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.RowSel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.CardBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1)
		s.CardLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.ErrText = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Header = lipgloss.NewStyle().Bold(true)
		s.HeaderSel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.RowSel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("153"))
		s.CardBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
		s.CardLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.ErrText = lipgloss.NewStyle().Foreground(lipgloss.Color("124"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	s.JSONKey = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	s.JSONString = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	s.JSONNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	s.JSONBool = lipgloss.NewStyle().Foreground(lipgloss.Color("207"))
	s.JSONNull = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	s.JSONPunct = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return s
}
