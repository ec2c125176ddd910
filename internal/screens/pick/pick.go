// Package pick is the category picker shown before a round starts.
package pick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/screens/flashcards"
	"palabritas/internal/screens/quiz"
	"palabritas/internal/screens/translation"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// PickScreen lets the player choose a category for one game mode.
type PickScreen struct {
	deps   screens.Deps
	mode   game.Mode
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*PickScreen)(nil)
var _ screen.KeyHintProvider = (*PickScreen)(nil)

// New creates a category picker for the given mode.
func New(deps screens.Deps, mode game.Mode) *PickScreen {
	p := &PickScreen{deps: deps, mode: mode}

	items := []components.MenuItem{
		{
			Label: "Todas las categorías",
			Hint:  fmt.Sprintf("%d palabras", deps.Vocab.WordCount()),
			Action: func() tea.Cmd {
				return p.start("")
			},
		},
	}
	for _, cat := range deps.Vocab.Categories() {
		cat := cat
		items = append(items, components.MenuItem{
			Label: cat,
			Hint:  fmt.Sprintf("%d palabras", len(deps.Vocab.Words(cat))),
			Action: func() tea.Cmd {
				return p.start(cat)
			},
		})
	}

	p.menu = components.NewMenu(items)
	return p
}

// start builds a session for category and pushes the matching game screen.
// A category too small to produce a single item shows a notice instead.
func (p *PickScreen) start(category string) tea.Cmd {
	p.deps.Audio.Play(audio.Click)

	var next screen.Screen
	switch p.mode {
	case game.ModeQuiz:
		qs := p.deps.Generator.MultipleChoice(category, p.deps.Questions)
		if s := game.NewQuiz(category, qs); s != nil {
			next = quiz.New(p.deps, s)
		}
	case game.ModeTranslation:
		prompts := p.deps.Generator.TranslationPrompts(category, p.deps.Questions)
		if s := game.NewTranslation(category, prompts); s != nil {
			next = translation.New(p.deps, s)
		}
	default:
		prompts := p.deps.Generator.TranslationPrompts(category, p.deps.Questions)
		if s := game.NewFlashcards(category, prompts); s != nil {
			next = flashcards.New(p.deps, s)
		}
	}

	if next == nil {
		p.notice = "No hay suficientes palabras en esta categoría."
		return nil
	}

	p.notice = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (p *PickScreen) Init() tea.Cmd {
	return nil
}

func (p *PickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickScreen) View(width, height int) string {
	header := theme.Title.Render(p.mode.DisplayName())
	prompt := theme.Subtitle.Render("¿Con qué categoría quieres jugar?")

	parts := []string{header, prompt, "", p.menu.View()}
	if p.notice != "" {
		parts = append(parts, "", theme.Incorrect.Render(p.notice))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(parts, "\n"))
}

func (p *PickScreen) Title() string {
	return p.mode.DisplayName()
}

func (p *PickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Mover"},
		{Key: "Enter", Description: "Jugar"},
		{Key: "Esc", Description: "Volver"},
	}
}
