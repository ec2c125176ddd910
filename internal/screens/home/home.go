// Package home is the main menu screen.
package home

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
	"palabritas/internal/screens/browse"
	"palabritas/internal/screens/pick"
	"palabritas/internal/screens/rename"
	statsscreen "palabritas/internal/screens/stats"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// HomeScreen is the main menu of the game.
type HomeScreen struct {
	deps screens.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps screens.Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			deps.Audio.Play(audio.Click)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label: "Tarjetas",
			Hint:  "repasa palabras con tarjetas",
			Action: push(func() screen.Screen {
				return pick.New(deps, game.ModeFlashcards)
			}),
		},
		{
			Label: "Quiz",
			Hint:  "elige la traducción correcta",
			Action: push(func() screen.Screen {
				return pick.New(deps, game.ModeQuiz)
			}),
		},
		{
			Label: "Traducción",
			Hint:  "escribe la palabra en inglés",
			Action: push(func() screen.Screen {
				return pick.New(deps, game.ModeTranslation)
			}),
		},
		{
			Label: "Explorar palabras",
			Hint:  "mira todas las palabras",
			Action: push(func() screen.Screen {
				return browse.New(deps)
			}),
		},
		{
			Label: "Mis estadísticas",
			Hint:  "puntos, logros y partidas",
			Action: push(func() screen.Screen {
				return statsscreen.New(deps)
			}),
		},
		{
			Label: "Cambiar nombre",
			Action: push(func() screen.Screen {
				return rename.New(deps)
			}),
		},
		{
			Label: "Salir",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("¡Palabritas!")
	subtitle := theme.Subtitle.Render(fmt.Sprintf(
		"Aprende inglés jugando · %d palabras en %d categorías",
		h.deps.Vocab.WordCount(), h.deps.Vocab.CategoryCount(),
	))

	greeting := theme.Body.Render(fmt.Sprintf("¡Hola, %s! ¿Qué quieres jugar hoy?",
		h.deps.Progress.PlayerName()))

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		greeting,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Menú"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Mover"},
		{Key: "Enter", Description: "Elegir"},
	}
}
