package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	progressFile = "progress.json"
	statsFile    = "stats.json"
	playerFile   = "player.json"
)

// Store owns the progress, stats and player documents inside one data
// directory. All components read and mutate progress through it; there is
// no ambient global state.
type Store struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the data directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Load returns the persisted progress merged with defaults for any missing
// field. Read, parse or schema failures fall back to all-defaults; nothing
// propagates to the caller beyond a log line.
func (s *Store) Load() Progress {
	p := DefaultProgress()
	raw, err := s.readDocument(progressFile, "progress")
	if err != nil {
		return p
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("progress document unreadable, using defaults", zap.Error(err))
		return DefaultProgress()
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

// Save merges partial into the existing progress document and writes it
// with a fresh last_saved stamp. The write is temp-file-then-rename so a
// crash mid-write cannot corrupt the previous valid file.
func (s *Store) Save(partial map[string]any) error {
	existing := s.Load()

	doc := make(map[string]any)
	raw, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("marshal existing progress: %w", err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode existing progress: %w", err)
	}
	for k, v := range partial {
		doc[k] = v
	}
	doc["last_saved"] = s.now().Format(time.RFC3339)

	return s.writeDocument(progressFile, doc)
}

// SaveProgress writes a full progress record, stamping last_saved.
func (s *Store) SaveProgress(p Progress) error {
	p.LastSaved = s.now().Format(time.RFC3339)
	return s.writeDocument(progressFile, p)
}

// Reset overwrites the progress document with defaults plus a reset stamp.
func (s *Store) Reset() error {
	p := DefaultProgress()
	p.ResetDate = s.now().Format(time.RFC3339)
	return s.writeDocument(progressFile, p)
}

// LoadStats returns the persisted stats merged with defaults.
func (s *Store) LoadStats() Stats {
	st := DefaultStats()
	raw, err := s.readDocument(statsFile, "stats")
	if err != nil {
		return st
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		s.logger.Warn("stats document unreadable, using defaults", zap.Error(err))
		return DefaultStats()
	}
	if st.Games == nil {
		st.Games = make(map[string]ModeStats)
	}
	return st
}

// RecordGameResult folds one finished round into the stats document:
// totals, the per-mode bucket and the derived accuracy.
func (s *Store) RecordGameResult(mode string, correct, total int) error {
	st := s.LoadStats()

	st.TotalGames++
	st.TotalQuestions += total
	st.TotalCorrect += correct

	bucket := st.Games[mode]
	bucket.Played++
	bucket.Questions += total
	bucket.Correct += correct
	st.Games[mode] = bucket

	st.OverallAccuracy = st.Accuracy()

	now := s.now().Format(time.RFC3339)
	if st.FirstPlay == "" {
		st.FirstPlay = now
	}
	st.LastPlay = &now

	return s.writeDocument(statsFile, st)
}

// PlayerName returns the persisted player name, or the default placeholder.
func (s *Store) PlayerName() string {
	var doc struct {
		Name string `json:"name"`
	}
	raw, err := s.readDocument(playerFile, "player")
	if err != nil {
		return DefaultPlayerName
	}
	if err := json.Unmarshal(raw, &doc); err != nil || strings.TrimSpace(doc.Name) == "" {
		return DefaultPlayerName
	}
	return strings.TrimSpace(doc.Name)
}

// SetPlayerName persists a new player name. Empty names are ignored.
func (s *Store) SetPlayerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.writeDocument(playerFile, map[string]string{"name": name})
}

// Achievements returns the earned achievements for the persisted state.
func (s *Store) Achievements() []string {
	return Achievements(s.Load(), s.LoadStats())
}

// readDocument reads and schema-validates one document. A missing file is
// reported as an error but not logged; anything else is logged.
func (s *Store) readDocument(file, schema string) ([]byte, error) {
	path := filepath.Join(s.dir, file)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read document failed", zap.String("file", file), zap.Error(err))
		}
		return nil, err
	}
	if err := validateDocument(schema, raw); err != nil {
		s.logger.Warn("document failed validation, using defaults",
			zap.String("file", file), zap.Error(err))
		return nil, err
	}
	return raw, nil
}

// writeDocument marshals v and atomically replaces the document file.
func (s *Store) writeDocument(file string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", file, err)
	}

	path := filepath.Join(s.dir, file)
	tmp, err := os.CreateTemp(s.dir, file+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", file, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", file, err)
	}
	return nil
}
