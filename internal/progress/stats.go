package progress

import "fmt"

// ModeStats is the per-game-mode bucket inside the stats document.
type ModeStats struct {
	Played    int `json:"played"`
	Questions int `json:"questions"`
	Correct   int `json:"correct"`
}

// Stats is the persisted aggregate counters record (stats.json).
// Append-only across sessions; it only decreases on explicit reset.
type Stats struct {
	TotalGames      int                  `json:"total_games"`
	TotalQuestions  int                  `json:"total_questions"`
	TotalCorrect    int                  `json:"total_correct"`
	OverallAccuracy float64              `json:"overall_accuracy"`
	Games           map[string]ModeStats `json:"games"`
	FirstPlay       string               `json:"first_play"`
	LastPlay        *string              `json:"last_play"`
}

// DefaultStats returns the all-defaults record. FirstPlay is stamped on the
// first write, not here.
func DefaultStats() Stats {
	return Stats{Games: make(map[string]ModeStats)}
}

// Accuracy returns overall accuracy as a percentage, 0 when nothing has
// been answered yet.
func (s Stats) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions) * 100
}

// Achievements returns the earned achievement labels for a progress/stats
// pair. Thresholds mirror the in-game milestones shown on the stats screen.
func Achievements(p Progress, s Stats) []string {
	var out []string

	if p.Score >= 100 {
		out = append(out, "Primeros 100 puntos")
	}
	if p.Score >= 500 {
		out = append(out, "500 puntos")
	}
	if p.Score >= 1000 {
		out = append(out, "Maestro del inglés (1000 puntos)")
	}

	if p.Level >= 5 {
		out = append(out, "Nivel 5 alcanzado")
	}
	if p.Level >= 10 {
		out = append(out, "Nivel 10 alcanzado")
	}

	if s.TotalGames >= 10 {
		out = append(out, "10 juegos completados")
	}
	if s.TotalGames >= 50 {
		out = append(out, "50 juegos completados")
	}

	acc := s.Accuracy()
	if acc >= 80 {
		out = append(out, "Precisión del 80%")
	}
	if acc >= 95 {
		out = append(out, "Precisión experta (95%)")
	}

	return out
}

// FormatAccuracy renders an accuracy percentage for display.
func FormatAccuracy(acc float64) string {
	return fmt.Sprintf("%.1f%%", acc)
}
