package translation

import (
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"palabritas/internal/audio"
	"palabritas/internal/game"
	"palabritas/internal/progress"
	"palabritas/internal/quizgen"
	"palabritas/internal/router"
	"palabritas/internal/screens"
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
		Generator: quizgen.NewWithRand(v, rand.New(rand.NewSource(3))),
		Progress:  store,
		Audio:     audio.NewNop(),
		Logger:    zap.NewNop(),
		Questions: 3,
	}
}

func newTestTranslation(t *testing.T) (*TranslationScreen, *game.Session) {
	t.Helper()
	deps := testDeps(t)
	prompts := deps.Generator.TranslationPrompts("", deps.Questions)
	session := game.NewTranslation("", prompts)
	if session == nil {
		t.Fatal("expected a session")
	}
	return New(deps, session), session
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeWord(tr *TranslationScreen, word string) {
	for _, r := range word {
		tr.Update(keyPress(r))
	}
}

func TestCorrectTranslationScores(t *testing.T) {
	tr, session := newTestTranslation(t)

	typeWord(tr, session.Prompt().Target)
	_, cmd := tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !tr.lastCorrect {
		t.Error("expected the exact translation to be correct")
	}
	if !tr.showingFeedback {
		t.Error("expected feedback after submitting")
	}
	if cmd == nil {
		t.Error("expected a scheduled auto-advance command")
	}
	if session.Points() != game.ModeTranslation.Points() {
		t.Errorf("Points = %d, want %d", session.Points(), game.ModeTranslation.Points())
	}
}

func TestEmptySubmissionCountsAsWrong(t *testing.T) {
	tr, session := newTestTranslation(t)

	tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if tr.lastCorrect {
		t.Error("empty input must not score")
	}
	if session.Points() != 0 {
		t.Errorf("Points = %d, want 0", session.Points())
	}
	if !tr.showingFeedback {
		t.Error("expected feedback even for an empty answer")
	}
}

func TestWrongAnswerShowsExpectedWord(t *testing.T) {
	tr, session := newTestTranslation(t)
	target := session.Prompt().Target

	typeWord(tr, "zzz")
	tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if tr.lastCorrect {
		t.Fatal("expected a wrong answer")
	}
	view := tr.View(80, 24)
	if !strings.Contains(view, target) {
		t.Errorf("feedback view should show the expected word %q", target)
	}
}

func TestFeedbackAdvancesWithFreshInput(t *testing.T) {
	tr, session := newTestTranslation(t)

	typeWord(tr, session.Prompt().Target)
	tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	tr.Update(feedbackDoneMsg{gen: session.Generation()})

	if session.Index() != 1 {
		t.Errorf("Index = %d, want 1", session.Index())
	}
	if tr.input.Value() != "" {
		t.Errorf("input not cleared, still %q", tr.input.Value())
	}
}

func TestStaleFeedbackTimerIsIgnored(t *testing.T) {
	tr, session := newTestTranslation(t)

	typeWord(tr, session.Prompt().Target)
	tr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	staleGen := session.Generation()

	tr.Update(keyPress(' '))
	if session.Index() != 1 {
		t.Fatalf("Index = %d, want 1 after keypress skip", session.Index())
	}

	tr.Update(feedbackDoneMsg{gen: staleGen})
	if session.Index() != 1 {
		t.Errorf("Index = %d after stale timer, want 1", session.Index())
	}
}

func TestEscAsksForConfirmation(t *testing.T) {
	tr, _ := newTestTranslation(t)

	tr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !tr.confirmQuit {
		t.Fatal("expected the quit confirmation")
	}

	_, cmd := tr.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command on confirm")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
