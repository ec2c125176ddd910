package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"palabritas/internal/history"
	"palabritas/internal/progress"
)

// Applied is the persisted outcome of a finished round.
type Applied struct {
	Score   int // cumulative score after the round
	Level   int // level after the round
	LevelUp bool
}

// ApplyResult folds a round summary into the persisted progress and stats,
// and logs the round into the history store. Persistence failures are
// logged and swallowed; the returned totals reflect the in-memory state,
// which stays authoritative until the next successful save.
func ApplyResult(store *progress.Store, hist *history.Store, logger *zap.Logger, sum Summary) Applied {
	if logger == nil {
		logger = zap.NewNop()
	}

	now := time.Now().Format(time.RFC3339)

	p := store.Load()
	p.Score += sum.Points
	levelUp := p.SyncLevel()
	p.GamesPlayed++
	p.WordsLearned += sum.Correct
	p.LastPlayed = &now

	if err := store.SaveProgress(p); err != nil {
		logger.Warn("save progress failed", zap.Error(err))
	}
	if err := store.RecordGameResult(string(sum.Mode), sum.Correct, sum.Total); err != nil {
		logger.Warn("record game result failed", zap.Error(err))
	}

	if err := hist.Insert(context.Background(), history.Round{
		SessionID: sum.SessionID,
		Mode:      string(sum.Mode),
		Category:  sum.Category,
		Questions: sum.Total,
		Correct:   sum.Correct,
		Points:    sum.Points,
		PlayedAt:  time.Now(),
	}); err != nil {
		logger.Warn("insert history round failed", zap.Error(err))
	}

	return Applied{Score: p.Score, Level: p.Level, LevelUp: levelUp}
}
