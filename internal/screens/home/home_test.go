package home

import (
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"palabritas/internal/audio"
	"palabritas/internal/progress"
	"palabritas/internal/quizgen"
	"palabritas/internal/router"
	"palabritas/internal/screens"
	"palabritas/internal/screens/pick"
	"palabritas/internal/vocab"
)

func newTestHome(t *testing.T) *HomeScreen {
	t.Helper()
	store, err := progress.NewStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	v := vocab.Builtin()
	return New(screens.Deps{
		Vocab:     v,
		Generator: quizgen.NewWithRand(v, rand.New(rand.NewSource(1))),
		Progress:  store,
		Audio:     audio.NewNop(),
		Logger:    zap.NewNop(),
		Questions: 10,
	})
}

func TestGreetingUsesPlayerName(t *testing.T) {
	h := newTestHome(t)
	view := h.View(80, 24)
	if !strings.Contains(view, progress.DefaultPlayerName) {
		t.Errorf("expected the default player name in the greeting")
	}
}

func TestEnterOnFirstItemOpensCategoryPicker(t *testing.T) {
	h := newTestHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*pick.PickScreen); !ok {
		t.Errorf("expected the category picker, got %T", msg.Screen)
	}
}

func TestLastItemQuits(t *testing.T) {
	h := newTestHome(t)

	for i := 0; i < len(h.menu.Items)-1; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the quit command")
	}
}
