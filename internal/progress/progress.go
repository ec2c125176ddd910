// Package progress persists the player's score, level, aggregate stats and
// name as JSON documents in the game's data directory. Persistence failures
// are never fatal: loads fall back to defaults and save errors are reported
// to the caller, with the in-memory state staying authoritative.
package progress

// PointsPerLevel is the score span of one level.
const PointsPerLevel = 100

// DefaultPlayerName is used when no player document exists.
const DefaultPlayerName = "Explorador"

// Progress is the persisted score/level record (progress.json).
type Progress struct {
	Score        int     `json:"score"`
	Level        int     `json:"level"`
	GamesPlayed  int     `json:"games_played"`
	WordsLearned int     `json:"words_learned"`
	LastPlayed   *string `json:"last_played"`
	LastSaved    string  `json:"last_saved,omitempty"`
	ResetDate    string  `json:"reset_date,omitempty"`
}

// DefaultProgress returns the all-defaults record.
func DefaultProgress() Progress {
	return Progress{Score: 0, Level: 1}
}

// Level derives the level for a score: one level per PointsPerLevel points,
// starting at 1. Monotonic in score and independent of award order.
func Level(score int) int {
	if score < 0 {
		return 1
	}
	return score/PointsPerLevel + 1
}

// SyncLevel recomputes the stored level from the score. Returns true if the
// level went up.
func (p *Progress) SyncLevel() bool {
	level := Level(p.Score)
	up := level > p.Level
	p.Level = level
	return up
}
