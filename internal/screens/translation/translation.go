// Package translation is the free-text translation game screen.
package translation

import (
	"fmt"
	"time"

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

// feedbackDelay leaves the answer on screen a little longer than the quiz
// does; typed rounds show the expected word and kids need time to read it.
const feedbackDelay = 2 * time.Second

// feedbackDoneMsg fires when the feedback delay elapses, tagged with the
// session generation it was scheduled for.
type feedbackDoneMsg struct {
	gen int
}

// TranslationScreen runs one typed-translation round.
type TranslationScreen struct {
	deps screens.Deps

	session *game.Session
	input   components.TextInput

	showingFeedback bool
	lastCorrect     bool
	confirmQuit     bool
}

var _ screen.Screen = (*TranslationScreen)(nil)
var _ screen.KeyHintProvider = (*TranslationScreen)(nil)

// New creates a translation screen for an already-built session.
func New(deps screens.Deps, session *game.Session) *TranslationScreen {
	return &TranslationScreen{
		deps:    deps,
		session: session,
		input:   components.NewTextInput("Escribe la palabra en inglés...", 40),
	}
}

func (t *TranslationScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TranslationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if !t.showingFeedback || msg.gen != t.session.Generation() {
			return t, nil
		}
		return t.advance()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TranslationScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.confirmQuit {
		switch key {
		case "y", "Y", "s", "S":
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			t.confirmQuit = false
		}
		return t, nil
	}

	if t.showingFeedback {
		return t.advance()
	}

	switch key {
	case "esc":
		t.confirmQuit = true
		return t, nil
	case "enter":
		// An empty submission counts as a wrong answer, same as a typo.
		return t.submit()
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TranslationScreen) submit() (screen.Screen, tea.Cmd) {
	t.lastCorrect = t.session.RecordAnswer(t.input.Value())
	t.input.Submit(t.lastCorrect)
	if t.lastCorrect {
		t.deps.Audio.Play(audio.Correct)
	} else {
		t.deps.Audio.Play(audio.Incorrect)
	}
	t.showingFeedback = true

	gen := t.session.Generation()
	return t, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{gen: gen}
	})
}

func (t *TranslationScreen) advance() (screen.Screen, tea.Cmd) {
	t.showingFeedback = false
	if !t.session.Advance() {
		sum := t.session.Summary()
		return t, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(t.deps, sum)}
		}
	}
	t.input = components.NewTextInput("Escribe la palabra en inglés...", 40)
	return t, t.input.Init()
}

func (t *TranslationScreen) View(width, height int) string {
	if t.confirmQuit {
		box := theme.Card.Align(lipgloss.Center).Render(
			theme.Body.Render("¿Quieres dejar la traducción?") + "\n\n" +
				theme.Hint.Render("S = sí · N = no"))
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(box)
	}

	p := t.session.Prompt()
	if p == nil {
		return ""
	}

	counter := theme.Subtitle.Render(fmt.Sprintf("Palabra %d de %d",
		t.session.Index()+1, t.session.Len()))

	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Traduce al inglés: «%s»", p.Source))

	content := counter + "\n\n" + question + "\n\n" + t.input.View()

	if t.showingFeedback {
		if t.lastCorrect {
			content += "\n\n" + theme.Correct.Render(
				fmt.Sprintf("¡Muy bien! +%d puntos", game.ModeTranslation.Points()))
		} else {
			content += "\n\n" + theme.Incorrect.Render(
				fmt.Sprintf("La respuesta era «%s»", p.Target))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (t *TranslationScreen) Title() string {
	return "Traducción"
}

func (t *TranslationScreen) KeyHints() []layout.KeyHint {
	if t.confirmQuit {
		return []layout.KeyHint{
			{Key: "S", Description: "Salir"},
			{Key: "N", Description: "Seguir jugando"},
		}
	}
	if t.showingFeedback {
		return []layout.KeyHint{
			{Key: "cualquier tecla", Description: "Continuar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Comprobar"},
		{Key: "Esc", Description: "Salir"},
	}
}
