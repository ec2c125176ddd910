package rename

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"palabritas/internal/audio"
	"palabritas/internal/progress"
	"palabritas/internal/screens"
)

func newTestRename(t *testing.T) (*RenameScreen, *progress.Store) {
	t.Helper()
	store, err := progress.NewStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	deps := screens.Deps{
		Progress: store,
		Audio:    audio.NewNop(),
		Logger:   zap.NewNop(),
	}
	return New(deps), store
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEnterSavesTheNewName(t *testing.T) {
	r, store := newTestRename(t)

	for _, c := range "Lucía" {
		r.Update(keyPress(c))
	}
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := store.PlayerName(); got != "Lucía" {
		t.Errorf("PlayerName = %q, want %q", got, "Lucía")
	}
	if cmd == nil {
		t.Error("expected rename and pop commands")
	}
}

func TestEmptyNameIsRejected(t *testing.T) {
	r, store := newTestRename(t)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Error("empty name must not navigate away")
	}
	if r.errs == "" {
		t.Error("expected a validation message")
	}
	if got := store.PlayerName(); got != progress.DefaultPlayerName {
		t.Errorf("PlayerName = %q, want the default", got)
	}
}
