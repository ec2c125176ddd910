package audio

import (
	"bytes"
	"testing"
)

func TestBellPlayerEvents(t *testing.T) {
	tests := []struct {
		event Event
		rings bool
	}{
		{Correct, true},
		{LevelUp, true},
		{Incorrect, false},
		{Click, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		NewBell(&buf).Play(tt.event)
		rang := buf.Len() > 0
		if rang != tt.rings {
			t.Errorf("Play(%q) rang=%v, want %v", tt.event, rang, tt.rings)
		}
	}
}

func TestNewBellNilWriter(t *testing.T) {
	p := NewBell(nil)
	// Must not panic.
	p.Play(Correct)
}

func TestNopPlayer(t *testing.T) {
	p := NewNop()
	for _, e := range []Event{Click, Correct, Incorrect, LevelUp} {
		p.Play(e)
	}
}
