// Package screens holds the dependency bundle and cross-screen messages
// shared by the individual screen packages.
package screens

import (
	"go.uber.org/zap"

	"palabritas/internal/audio"
	"palabritas/internal/history"
	"palabritas/internal/progress"
	"palabritas/internal/quizgen"
	"palabritas/internal/vocab"
)

// Deps carries every collaborator a screen may need. One bundle is built
// at startup and injected down the screen stack; there are no ambient
// singletons.
type Deps struct {
	Vocab     *vocab.Vocabulary
	Generator *quizgen.Generator
	Progress  *progress.Store
	History   *history.Store
	Audio     audio.Player
	Logger    *zap.Logger
	Questions int // round length per game
}

// ProgressUpdatedMsg tells the root model to refresh the score and level
// shown in the header.
type ProgressUpdatedMsg struct {
	Score int
	Level int
}

// PlayerRenamedMsg tells the root model the player picked a new name.
type PlayerRenamedMsg struct {
	Name string
}
