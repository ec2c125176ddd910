package pick

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/progress"
	"palabritas/internal/quizgen"
	"palabritas/internal/router"
	"palabritas/internal/screens"
	"palabritas/internal/screens/flashcards"
	"palabritas/internal/screens/quiz"
	"palabritas/internal/screens/translation"
	"palabritas/internal/vocab"
)

func testDeps(t *testing.T) screens.Deps {
	t.Helper()
	store, err := progress.NewStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	v := vocab.Builtin()
	return screens.Deps{
		Vocab:     v,
		Generator: quizgen.NewWithRand(v, rand.New(rand.NewSource(11))),
		Progress:  store,
		Audio:     audio.NewNop(),
		Logger:    zap.NewNop(),
		Questions: 4,
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestMenuListsAllCategoriesPlusAll(t *testing.T) {
	deps := testDeps(t)
	p := New(deps, game.ModeQuiz)

	want := len(deps.Vocab.Categories()) + 1
	if got := len(p.menu.Items); got != want {
		t.Errorf("menu items = %d, want %d", got, want)
	}
	if p.menu.Items[0].Label != "Todas las categorías" {
		t.Errorf("first item = %q", p.menu.Items[0].Label)
	}
}

func TestSelectingStartsTheMatchingScreen(t *testing.T) {
	cases := []struct {
		mode game.Mode
		want string
	}{
		{game.ModeQuiz, "quiz"},
		{game.ModeTranslation, "translation"},
		{game.ModeFlashcards, "flashcards"},
	}

	for _, tc := range cases {
		p := New(testDeps(t), tc.mode)
		_, cmd := p.Update(enter())
		if cmd == nil {
			t.Fatalf("%s: expected a command", tc.mode)
		}
		msg, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("%s: expected PushScreenMsg, got %T", tc.mode, cmd())
		}
		switch tc.want {
		case "quiz":
			if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
				t.Errorf("quiz mode pushed %T", msg.Screen)
			}
		case "translation":
			if _, ok := msg.Screen.(*translation.TranslationScreen); !ok {
				t.Errorf("translation mode pushed %T", msg.Screen)
			}
		case "flashcards":
			if _, ok := msg.Screen.(*flashcards.FlashcardsScreen); !ok {
				t.Errorf("flashcards mode pushed %T", msg.Screen)
			}
		}
	}
}

func TestSmallCategoryStillFillsTheRound(t *testing.T) {
	deps := testDeps(t)
	deps.Questions = 20 // more than any single category holds

	p := New(deps, game.ModeQuiz)
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_ = cmd
	_, cmd = p.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Fatalf("expected a quiz screen, got %T", msg.Screen)
	}
	if p.notice != "" {
		t.Errorf("unexpected notice %q; the pool should widen instead", p.notice)
	}
}

func TestEscReturnsToMenu(t *testing.T) {
	p := New(testDeps(t), game.ModeQuiz)

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
