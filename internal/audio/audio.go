// Package audio maps game events to sound cues. The core only names the
// event; players are fire-and-forget and tolerate every failure, so a
// missing or broken audio backend silently disables the feature.
package audio

import "io"

// Event names a sound cue.
type Event string

const (
	Click     Event = "click"
	Correct   Event = "correct"
	Incorrect Event = "incorrect"
	LevelUp   Event = "level_up"
)

// Player plays a cue for an event. Implementations must never block the
// caller and never fail loudly.
type Player interface {
	Play(Event)
}

type nopPlayer struct{}

func (nopPlayer) Play(Event) {}

// NewNop returns a player that does nothing. Substituted whenever sound is
// disabled or a real backend cannot initialize.
func NewNop() Player {
	return nopPlayer{}
}

// bellPlayer rings the terminal bell for celebratory events. It is the
// only audio backend a plain terminal can offer.
type bellPlayer struct {
	w io.Writer
}

// NewBell returns a player that writes BEL to w for Correct and LevelUp
// events and stays quiet otherwise.
func NewBell(w io.Writer) Player {
	if w == nil {
		return NewNop()
	}
	return bellPlayer{w: w}
}

func (b bellPlayer) Play(e Event) {
	switch e {
	case Correct, LevelUp:
		// Write errors are swallowed: audio is best-effort.
		_, _ = b.w.Write([]byte("\a"))
	}
}
