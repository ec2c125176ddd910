// Package results shows the outcome of a finished round and persists it.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/progress"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// appliedMsg carries the persisted outcome back into the screen.
type appliedMsg struct {
	applied game.Applied
}

// ResultsScreen shows one round summary. Persisting the round happens in
// Init, exactly once per screen instance; re-renders never double-apply.
type ResultsScreen struct {
	deps    screens.Deps
	summary game.Summary
	applied *game.Applied
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished round.
func New(deps screens.Deps, summary game.Summary) *ResultsScreen {
	return &ResultsScreen{deps: deps, summary: summary}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		applied := game.ApplyResult(r.deps.Progress, r.deps.History, r.deps.Logger, r.summary)
		return appliedMsg{applied: applied}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case appliedMsg:
		r.applied = &msg.applied
		if msg.applied.LevelUp {
			r.deps.Audio.Play(audio.LevelUp)
		}
		return r, func() tea.Msg {
			return screens.ProgressUpdatedMsg{
				Score: msg.applied.Score,
				Level: msg.applied.Level,
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var lines []string

	lines = append(lines, theme.Title.Render("¡Ronda terminada!"))
	lines = append(lines, theme.Subtitle.Render(r.summary.Mode.DisplayName()+" · "+categoryLabel(r.summary.Category)))
	lines = append(lines, "")

	if r.summary.Mode == game.ModeFlashcards {
		lines = append(lines, theme.Body.Render(
			fmt.Sprintf("Repasaste %d tarjetas", r.summary.Total)))
	} else {
		lines = append(lines, theme.Body.Render(
			fmt.Sprintf("Acertaste %d de %d (%s)",
				r.summary.Correct, r.summary.Total,
				progress.FormatAccuracy(r.summary.Accuracy))))
	}
	lines = append(lines, theme.Correct.Render(
		fmt.Sprintf("+%d puntos", r.summary.Points)))

	if r.applied != nil {
		lines = append(lines, "")
		lines = append(lines, theme.Body.Render(
			fmt.Sprintf("Total: %d puntos · Nivel %d", r.applied.Score, r.applied.Level)))
		if r.applied.LevelUp {
			banner := lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render(fmt.Sprintf("★ ¡Subiste al nivel %d! ★", r.applied.Level))
			lines = append(lines, "", banner)
		}
	}

	content := theme.Card.
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (r *ResultsScreen) Title() string {
	return "Resultados"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Volver al menú"},
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return "Todas las categorías"
	}
	return category
}
