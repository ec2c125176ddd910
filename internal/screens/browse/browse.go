// Package browse lets the player explore the vocabulary without playing.
package browse

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

// BrowseScreen shows the category list and, once one is chosen, its words.
type BrowseScreen struct {
	deps     screens.Deps
	menu     components.Menu
	category string // empty while still on the category list
	offset   int    // scroll offset inside the word list
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates the vocabulary browser.
func New(deps screens.Deps) *BrowseScreen {
	b := &BrowseScreen{deps: deps}

	var items []components.MenuItem
	for _, cat := range deps.Vocab.Categories() {
		cat := cat
		items = append(items, components.MenuItem{
			Label: cat,
			Hint:  fmt.Sprintf("%d palabras", len(deps.Vocab.Words(cat))),
			Action: func() tea.Cmd {
				deps.Audio.Play(audio.Click)
				b.category = cat
				b.offset = 0
				return nil
			},
		})
	}
	b.menu = components.NewMenu(items)
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.category == "" {
		if kmsg.String() == "esc" {
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		b.menu, cmd = b.menu.Update(msg)
		return b, cmd
	}

	switch kmsg.String() {
	case "esc":
		b.category = ""
	case "up", "k":
		if b.offset > 0 {
			b.offset--
		}
	case "down", "j":
		if b.offset < len(b.deps.Vocab.Words(b.category))-1 {
			b.offset++
		}
	}
	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	var content string
	if b.category == "" {
		content = theme.Title.Render("Explorar palabras") + "\n" +
			theme.Subtitle.Render("Elige una categoría") + "\n\n" +
			b.menu.View()
	} else {
		content = b.renderWordList(height)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderWordList renders the category's pairs, windowed to the available
// height so long categories scroll instead of overflowing.
func (b *BrowseScreen) renderWordList(height int) string {
	pairs := b.deps.Vocab.Pairs(b.category)

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	start := b.offset
	if start > len(pairs)-visible {
		start = len(pairs) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(pairs) {
		end = len(pairs)
	}

	var rows []string
	for _, p := range pairs[start:end] {
		rows = append(rows, fmt.Sprintf("%-18s %s",
			theme.Body.Render(p.Source),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.Target)))
	}

	header := theme.Title.Render(b.category) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("%d palabras", len(pairs)))

	return header + "\n\n" + strings.Join(rows, "\n")
}

func (b *BrowseScreen) Title() string {
	return "Explorar"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.category == "" {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Mover"},
			{Key: "Enter", Description: "Ver palabras"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Desplazar"},
		{Key: "Esc", Description: "Categorías"},
	}
}
