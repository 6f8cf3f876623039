package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"staffdeck/internal/ai"
	"staffdeck/internal/config"
	"staffdeck/internal/engine"
	"staffdeck/internal/model"
	"staffdeck/internal/state"
	"staffdeck/internal/store"
)

func initialModel(ctx context.Context, cfg *config.Config, client *store.Client) *Model {
	cols := model.Columns()
	fs := engine.NewFilterState()
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		st:     state.NewStore(),
		coord:  state.NewCoordinator(client),
		cols:   cols,
		pipe:   engine.NewPipeline(cols),
		fs:     &fs,
		win:    engine.NewWindow(cfg.RowEstimate, 5),
		deb:    engine.NewDebouncer(engine.DebounceDelay),
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
		search: textinput.New(),
		spin:   spinner.New(),
	}
	m.spin.Spinner = spinner.Dot
	m.search.CharLimit = 256
	m.search.Prompt = ""
	m.modalVP = viewport.New(80, 20)
	if !cfg.Offline && cfg.OpenAIKey() != "" {
		m.aiClient = ai.NewOpenAIClient(cfg.OpenAIKey(), cfg.OpenAIBase, cfg.OpenAIModel,
			time.Duration(cfg.OpenAITimeoutSec)*time.Second)
	}
	return m
}

func Run(ctx context.Context, cfg *config.Config, client *store.Client) error {
	m := initialModel(ctx, cfg, client)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	m.st.Apply(state.OpStarted{Op: state.OpLoad})
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg { return m.coord.Load(m.ctx) },
	)
}
