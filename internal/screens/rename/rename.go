// Package rename lets the player change the name shown in the header.
package rename

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/audio"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// RenameScreen asks for a new player name.
type RenameScreen struct {
	deps  screens.Deps
	input components.TextInput
	errs  string
}

var _ screen.Screen = (*RenameScreen)(nil)
var _ screen.KeyHintProvider = (*RenameScreen)(nil)

// New creates the rename screen.
func New(deps screens.Deps) *RenameScreen {
	return &RenameScreen{
		deps:  deps,
		input: components.NewTextInput(deps.Progress.PlayerName(), 24),
	}
}

func (r *RenameScreen) Init() tea.Cmd {
	return r.input.Init()
}

func (r *RenameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			name := strings.TrimSpace(r.input.Value())
			if name == "" {
				r.errs = "El nombre no puede estar vacío."
				return r, nil
			}
			if err := r.deps.Progress.SetPlayerName(name); err != nil {
				r.deps.Logger.Warn("save player name failed")
				r.errs = "No se pudo guardar el nombre."
				return r, nil
			}
			r.deps.Audio.Play(audio.Click)
			return r, tea.Batch(
				func() tea.Msg { return screens.PlayerRenamedMsg{Name: name} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r *RenameScreen) View(width, height int) string {
	parts := []string{
		theme.Title.Render("Cambiar nombre"),
		theme.Subtitle.Render(fmt.Sprintf("Ahora mismo te llamas %s", r.deps.Progress.PlayerName())),
		"",
		r.input.View(),
	}
	if r.errs != "" {
		parts = append(parts, "", theme.Incorrect.Render(r.errs))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(parts, "\n"))
}

func (r *RenameScreen) Title() string {
	return "Nombre"
}

func (r *RenameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Guardar"},
		{Key: "Esc", Description: "Volver"},
	}
}
