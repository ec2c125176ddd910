// Package stats shows lifetime progress, achievements and recent rounds.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"palabritas/internal/game"
	"palabritas/internal/history"
	"palabritas/internal/progress"
	"palabritas/internal/router"
	"palabritas/internal/screen"
	"palabritas/internal/screens"
	"palabritas/internal/ui/components"
	"palabritas/internal/ui/layout"
	"palabritas/internal/ui/theme"
)

// loadedMsg delivers everything the screen renders in one message.
type loadedMsg struct {
	progress     progress.Progress
	stats        progress.Stats
	achievements []string
	recent       []history.Round
}

// StatsScreen is a read-only view over the persisted state.
type StatsScreen struct {
	deps   screens.Deps
	loaded bool
	data   loadedMsg
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the statistics screen.
func New(deps screens.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recent, err := s.deps.History.Recent(context.Background(), 5)
		if err != nil {
			s.deps.Logger.Warn("load recent rounds failed")
			recent = nil
		}
		return loadedMsg{
			progress:     s.deps.Progress.Load(),
			stats:        s.deps.Progress.LoadStats(),
			achievements: s.deps.Progress.Achievements(),
			recent:       recent,
		}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.data = msg
		s.loaded = true
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("Cargando..."))
	}

	p := s.data.progress
	st := s.data.stats

	var sections []string

	sections = append(sections, theme.Title.Render(
		fmt.Sprintf("Estadísticas de %s", s.deps.Progress.PlayerName())))

	toNext := p.Score % progress.PointsPerLevel
	bar := components.NewProgressBar(
		fmt.Sprintf("Nivel %d", p.Level),
		float64(toNext)/float64(progress.PointsPerLevel),
		true, 44).View()
	sections = append(sections, theme.Body.Render(
		fmt.Sprintf("%d puntos · %d partidas · %d palabras aprendidas",
			p.Score, p.GamesPlayed, p.WordsLearned))+"\n"+bar)

	if st.TotalGames > 0 {
		var rows []string
		rows = append(rows, theme.Subtitle.Render("Por modo de juego"))
		for _, mode := range []game.Mode{game.ModeFlashcards, game.ModeQuiz, game.ModeTranslation} {
			bucket, ok := st.Games[string(mode)]
			if !ok {
				continue
			}
			acc := 0.0
			if bucket.Questions > 0 {
				acc = float64(bucket.Correct) / float64(bucket.Questions) * 100
			}
			rows = append(rows, fmt.Sprintf("%-12s %3d partidas   %s",
				mode.DisplayName(), bucket.Played, progress.FormatAccuracy(acc)))
		}
		rows = append(rows, fmt.Sprintf("%-12s %3d partidas   %s",
			"Total", st.TotalGames, progress.FormatAccuracy(st.Accuracy())))
		sections = append(sections, strings.Join(rows, "\n"))
	}

	if len(s.data.achievements) > 0 {
		rows := []string{theme.Subtitle.Render("Logros")}
		for _, a := range s.data.achievements {
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.Accent).Render("★ "+a))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	if len(s.data.recent) > 0 {
		rows := []string{theme.Subtitle.Render("Últimas rondas")}
		for _, r := range s.data.recent {
			cat := r.Category
			if cat == "" {
				cat = "Todas"
			}
			rows = append(rows, fmt.Sprintf("%s  %-12s %-10s %d/%d  +%d pts",
				r.PlayedAt.Format("02 Jan 15:04"),
				game.Mode(r.Mode).DisplayName(), cat, r.Correct, r.Questions, r.Points))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *StatsScreen) Title() string {
	return "Estadísticas"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}
