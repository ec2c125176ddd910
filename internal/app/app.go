// Package app hosts the root Bubble Tea model: the screen router plus the
// header and footer chrome shared by every screen.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/screens/home"
	"palabritas/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int

	// header state; refreshed from messages, never re-read from disk
	// on every frame.
	player string
	score  int
	level  int
}

// NewModel creates the root model with the home screen on the stack.
func NewModel(deps screens.Deps) AppModel {
	p := deps.Progress.Load()
	return AppModel{
		router: router.New(home.New(deps)),
		player: deps.Progress.PlayerName(),
		score:  p.Score,
		level:  p.Level,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.ProgressUpdatedMsg:
		m.score = msg.Score
		m.level = msg.Level
		return m, nil

	case screens.PlayerRenamedMsg:
		m.player = msg.Name
		return m, nil

	case tea.KeyMsg:
		// Esc stays with the screens: game rounds turn it into a quit
		// confirmation rather than an immediate pop.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.player, m.score, m.level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, provider.KeyHints()...)
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(NewModel(deps))
	_, err := p.Run()
	return err
}
