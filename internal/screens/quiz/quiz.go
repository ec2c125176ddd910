// Package quiz is the multiple-choice game screen.
package quiz

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/quizgen"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/screens/results"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// feedbackDelay is how long the correct/incorrect feedback stays on screen
// before the round auto-advances.
const feedbackDelay = 1500 * time.Millisecond

// feedbackDoneMsg fires when the feedback delay elapses. It carries the
// session generation it was scheduled for; a stale generation means the
// player already advanced by keypress and the message is dropped.
type feedbackDoneMsg struct {
	gen int
}

// QuizScreen runs one multiple-choice round.
type QuizScreen struct {
	deps screens.Deps

	session *game.Session
	mc      components.MultiChoice

	showingFeedback bool
	lastCorrect     bool
	confirmQuit     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for an already-built session.
func New(deps screens.Deps, session *game.Session) *QuizScreen {
	q := &QuizScreen{deps: deps, session: session}
	q.mc = newChoice(session.Question())
	return q
}

func newChoice(q *quizgen.Question) components.MultiChoice {
	if q == nil {
		return components.MultiChoice{}
	}
	correct := 0
	for i, opt := range q.Options {
		if opt == q.Answer {
			correct = i
			break
		}
	}
	return components.NewMultiChoice(
		fmt.Sprintf("¿Cómo se dice «%s» en inglés?", q.Prompt),
		q.Options, correct)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if !q.showingFeedback || msg.gen != q.session.Generation() {
			return q, nil
		}
		return q.advance()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.confirmQuit {
		switch key {
		case "y", "Y", "s", "S":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	// Any key skips the rest of the feedback delay.
	if q.showingFeedback {
		return q.advance()
	}

	if key == "esc" {
		q.confirmQuit = true
		return q, nil
	}

	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)
	if q.mc.Submitted {
		return q.submit()
	}
	return q, cmd
}

// submit checks the chosen option and schedules the auto-advance.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q.lastCorrect = q.session.RecordAnswer(q.mc.Chosen())
	if q.lastCorrect {
		q.deps.Audio.Play(audio.Correct)
	} else {
		q.deps.Audio.Play(audio.Incorrect)
	}
	q.showingFeedback = true

	gen := q.session.Generation()
	return q, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{gen: gen}
	})
}

// advance moves to the next question or hands over to the results screen.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	q.showingFeedback = false
	if !q.session.Advance() {
		sum := q.session.Summary()
		return q, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(q.deps, sum)}
		}
	}
	q.mc = newChoice(q.session.Question())
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	if q.confirmQuit {
		box := theme.Card.Align(lipgloss.Center).Render(
			theme.Body.Render("¿Quieres dejar el quiz?") + "\n\n" +
				theme.Hint.Render("S = sí · N = no"))
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(box)
	}

	counter := theme.Subtitle.Render(fmt.Sprintf("Pregunta %d de %d",
		q.session.Index()+1, q.session.Len()))

	content := counter + "\n\n" + q.mc.View()

	if q.showingFeedback {
		if q.lastCorrect {
			content += "\n" + theme.Correct.Render(
				fmt.Sprintf("¡Correcto! +%d puntos", game.ModeQuiz.Points()))
		} else {
			content += "\n" + theme.Incorrect.Render("¡Casi! Sigue intentando.")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmQuit {
		return []layout.KeyHint{
			{Key: "S", Description: "Salir del quiz"},
			{Key: "N", Description: "Seguir jugando"},
		}
	}
	if q.showingFeedback {
		return []layout.KeyHint{
			{Key: "cualquier tecla", Description: "Continuar"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-d", Description: "Responder"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Salir"},
	}
}
