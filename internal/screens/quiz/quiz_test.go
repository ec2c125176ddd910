package quiz

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
	"palabritas/internal/screens/results"
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
		Generator: quizgen.NewWithRand(v, rand.New(rand.NewSource(7))),
		Progress:  store,
		Audio:     audio.NewNop(),
		Logger:    zap.NewNop(),
		Questions: 3,
	}
}

func newTestQuiz(t *testing.T) (*QuizScreen, *game.Session) {
	t.Helper()
	deps := testDeps(t)
	questions := deps.Generator.MultipleChoice("", deps.Questions)
	session := game.NewQuiz("", questions)
	if session == nil {
		t.Fatal("expected a session")
	}
	return New(deps, session), session
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestCorrectAnswerShowsFeedbackAndScores(t *testing.T) {
	q, session := newTestQuiz(t)

	q.mc.Selected = q.mc.CorrectIndex
	_, cmd := q.Update(specialKey(tea.KeyEnter))

	if !q.showingFeedback {
		t.Error("expected feedback after submitting")
	}
	if !q.lastCorrect {
		t.Error("expected the correct option to score")
	}
	if cmd == nil {
		t.Error("expected a scheduled auto-advance command")
	}
	if session.Points() != game.ModeQuiz.Points() {
		t.Errorf("Points = %d, want %d", session.Points(), game.ModeQuiz.Points())
	}
}

func TestFeedbackTimerAdvances(t *testing.T) {
	q, session := newTestQuiz(t)

	q.mc.Selected = q.mc.CorrectIndex
	q.Update(specialKey(tea.KeyEnter))

	q.Update(feedbackDoneMsg{gen: session.Generation()})

	if q.showingFeedback {
		t.Error("feedback should be dismissed by the timer")
	}
	if session.Index() != 1 {
		t.Errorf("Index = %d, want 1", session.Index())
	}
}

func TestStaleFeedbackTimerIsIgnored(t *testing.T) {
	q, session := newTestQuiz(t)

	q.mc.Selected = q.mc.CorrectIndex
	q.Update(specialKey(tea.KeyEnter))
	staleGen := session.Generation()

	// The player skips ahead by keypress before the timer fires.
	q.Update(keyPress(' '))
	if session.Index() != 1 {
		t.Fatalf("Index = %d, want 1 after keypress skip", session.Index())
	}

	// The late timer for the previous question must not advance again.
	q.Update(feedbackDoneMsg{gen: staleGen})
	if session.Index() != 1 {
		t.Errorf("Index = %d after stale timer, want 1", session.Index())
	}
}

func TestLastQuestionHandsOverToResults(t *testing.T) {
	q, session := newTestQuiz(t)

	var cmd tea.Cmd
	for !session.Done() {
		q.mc.Selected = q.mc.CorrectIndex
		q.Update(specialKey(tea.KeyEnter))
		_, cmd = q.Update(feedbackDoneMsg{gen: session.Generation()})
	}

	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected a results screen, got %T", msg.Screen)
	}
}

func TestEscAsksForConfirmation(t *testing.T) {
	q, _ := newTestQuiz(t)

	q.Update(specialKey(tea.KeyEscape))
	if !q.confirmQuit {
		t.Fatal("expected the quit confirmation")
	}

	// N keeps playing.
	q.Update(keyPress('n'))
	if q.confirmQuit {
		t.Error("expected N to dismiss the confirmation")
	}

	// S pops back to the picker.
	q.Update(specialKey(tea.KeyEscape))
	_, cmd := q.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a command on confirm")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestViewShowsQuestionCounter(t *testing.T) {
	q, _ := newTestQuiz(t)
	view := q.View(80, 24)
	if view == "" {
		t.Error("expected non-empty quiz view")
	}
}
