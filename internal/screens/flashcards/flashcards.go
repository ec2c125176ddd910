// Package flashcards is the card-review game screen. Each card shows a
// Spanish word; the player flips it to see the English side and moves on.
package flashcards

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/screens/results"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// FlashcardsScreen runs one flashcard round.
type FlashcardsScreen struct {
	deps     screens.Deps
	session  *game.Session
	revealed bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates a flashcard screen for an already-built session.
func New(deps screens.Deps, session *game.Session) *FlashcardsScreen {
	return &FlashcardsScreen{deps: deps, session: session}
}

func (f *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "esc":
		// Abandoned rounds are discarded; nothing was persisted yet.
		return f, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter", " ":
		if !f.revealed {
			f.revealed = true
			f.deps.Audio.Play(audio.Click)
			return f, nil
		}
		f.revealed = false
		f.session.RecordReview()
		if !f.session.Advance() {
			sum := f.session.Summary()
			return f, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.New(f.deps, sum)}
			}
		}
		return f, nil
	}

	return f, nil
}

func (f *FlashcardsScreen) View(width, height int) string {
	p := f.session.Prompt()
	if p == nil {
		return ""
	}

	cardWidth := 36
	front := theme.Title.Render(p.Source)
	body := front + "\n\n" + theme.Hint.Render("pulsa Enter para girar")
	if f.revealed {
		body = front + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Align(lipgloss.Center).Render(p.Target)
	}

	card := theme.Card.
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(body)

	counter := theme.Subtitle.Render(fmt.Sprintf("Tarjeta %d de %d · %s",
		f.session.Index()+1, f.session.Len(), categoryLabel(f.session.Category)))

	bar := components.NewProgressBar("",
		float64(f.session.Index())/float64(f.session.Len()), false, cardWidth).View()

	content := counter + "\n\n" + card + "\n\n" + bar

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (f *FlashcardsScreen) Title() string {
	return "Tarjetas"
}

func (f *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if !f.revealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Girar"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Siguiente"},
		{Key: "Esc", Description: "Volver"},
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return "Todas las categorías"
	}
	return category
}
