package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"palabritas/internal/app"
	"palabritas/internal/audio"
	"palabritas/internal/config"
	"palabritas/internal/history"
	"palabritas/internal/progress"
	"palabritas/internal/quizgen"
	"palabritas/internal/screens"
	"palabritas/internal/vocab"
)

// runApp builds all dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dataDir := resolveDataDir(cmd)

	cfg, err := config.Load(resolveConfigPath(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config unreadable, using defaults:", err)
		cfg = config.FileConfig{}
	}

	logger := newLogger(dataDir)
	defer logger.Sync()

	store, err := progress.NewStore(dataDir, logger)
	if err != nil {
		return fmt.Errorf("open progress store: %w", err)
	}

	// A configured name only seeds the player document; once the player
	// renames themselves in-game, the document wins.
	if name := cfg.PlayerName(); name != "" && store.PlayerName() == progress.DefaultPlayerName {
		if err := store.SetPlayerName(name); err != nil {
			logger.Warn("seed player name failed", zap.Error(err))
		}
	}

	hist, err := history.Open(filepath.Join(dataDir, "history.db"))
	if err != nil {
		// Round history is optional; the nil store disables it.
		logger.Warn("history unavailable", zap.Error(err))
		hist = nil
	}
	defer hist.Close()

	var player audio.Player = audio.NewNop()
	if cfg.SoundEnabled() {
		player = audio.NewBell(os.Stderr)
	}

	v := vocab.Builtin()
	deps := screens.Deps{
		Vocab:     v,
		Generator: quizgen.New(v),
		Progress:  store,
		History:   hist,
		Audio:     player,
		Logger:    logger,
		Questions: cfg.QuestionCount(),
	}

	logger.Info("starting palabritas",
		zap.String("data_dir", dataDir),
		zap.Int("questions", deps.Questions),
		zap.Bool("sound", cfg.SoundEnabled()),
	)

	return app.Run(deps)
}

// newLogger writes structured logs to a file in the data directory; the
// terminal belongs to the TUI. Falls back to a no-op logger.
func newLogger(dataDir string) *zap.Logger {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return zap.NewNop()
	}
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{filepath.Join(dataDir, "palabritas.log")}
	logCfg.ErrorOutputPaths = logCfg.OutputPaths
	logger, err := logCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
