// Package game holds the session state machine: one run of a game mode
// from start to its results, as a linear iterator over a pre-generated
// list. Sessions are single-user and owned by exactly one screen.
package game

import (
	"github.com/google/uuid"

	"palabritas/internal/quizgen"
)

// Mode identifies a playable game mode.
type Mode string

const (
	ModeFlashcards  Mode = "flashcards"
	ModeQuiz        Mode = "quiz"
	ModeTranslation Mode = "translation"
)

// Points returns the points awarded per item in this mode. Flashcards pay
// per card reviewed regardless of correctness; a card has no wrong answer.
func (m Mode) Points() int {
	switch m {
	case ModeQuiz:
		return 10
	case ModeTranslation:
		return 15
	default:
		return 5
	}
}

// DisplayName returns the label shown in menus and results.
func (m Mode) DisplayName() string {
	switch m {
	case ModeQuiz:
		return "Quiz"
	case ModeTranslation:
		return "Traducción"
	default:
		return "Tarjetas"
	}
}

// Session iterates over one round of questions, cards or prompts. It is
// created when a mode starts and discarded when the player returns to the
// menu or a new round begins.
type Session struct {
	ID       string
	Mode     Mode
	Category string // empty means all categories

	questions []quizgen.Question // quiz only
	prompts   []quizgen.Prompt   // flashcards and translation

	index   int
	correct int
	points  int
	gen     int
}

// NewQuiz starts a quiz session. Returns nil for an empty question list;
// callers treat that as "not enough words", not a crash.
func NewQuiz(category string, questions []quizgen.Question) *Session {
	if len(questions) == 0 {
		return nil
	}
	return &Session{
		ID:        uuid.New().String(),
		Mode:      ModeQuiz,
		Category:  category,
		questions: questions,
	}
}

// NewTranslation starts a free-text translation session.
func NewTranslation(category string, prompts []quizgen.Prompt) *Session {
	if len(prompts) == 0 {
		return nil
	}
	return &Session{
		ID:       uuid.New().String(),
		Mode:     ModeTranslation,
		Category: category,
		prompts:  prompts,
	}
}

// NewFlashcards starts a flashcard session.
func NewFlashcards(category string, prompts []quizgen.Prompt) *Session {
	if len(prompts) == 0 {
		return nil
	}
	return &Session{
		ID:       uuid.New().String(),
		Mode:     ModeFlashcards,
		Category: category,
		prompts:  prompts,
	}
}

// Len returns the number of items in the round.
func (s *Session) Len() int {
	if s.Mode == ModeQuiz {
		return len(s.questions)
	}
	return len(s.prompts)
}

// Index returns the zero-based position of the current item.
func (s *Session) Index() int {
	return s.index
}

// Done reports whether the round has reached its results state.
func (s *Session) Done() bool {
	return s.index >= s.Len()
}

// Question returns the current quiz question, or nil outside a quiz round
// or past the end.
func (s *Session) Question() *quizgen.Question {
	if s.Mode != ModeQuiz || s.Done() {
		return nil
	}
	return &s.questions[s.index]
}

// Prompt returns the current card or translation prompt, or nil in a quiz
// round or past the end.
func (s *Session) Prompt() *quizgen.Prompt {
	if s.Mode == ModeQuiz || s.Done() {
		return nil
	}
	return &s.prompts[s.index]
}

// Advance moves to the next item. Returns false once the round is over.
// Each advance bumps the generation so stale timer callbacks from the
// previous item become no-ops.
func (s *Session) Advance() bool {
	if s.Done() {
		return false
	}
	s.index++
	s.gen++
	return !s.Done()
}

// Generation returns the session's current generation number. Delayed
// auto-advance commands capture it and are dropped when it no longer
// matches.
func (s *Session) Generation() int {
	return s.gen
}

// RecordAnswer checks the player's input against the current item, awards
// points on a match and returns whether it was correct. Flashcard rounds
// use RecordReview instead.
func (s *Session) RecordAnswer(input string) bool {
	var correct bool
	switch s.Mode {
	case ModeQuiz:
		q := s.Question()
		if q == nil {
			return false
		}
		correct = quizgen.CheckAnswer(input, q.Answer)
	case ModeTranslation:
		p := s.Prompt()
		if p == nil {
			return false
		}
		correct = quizgen.CheckAnswer(input, p.Target)
	default:
		return false
	}

	if correct {
		s.correct++
		s.points += s.Mode.Points()
	}
	return correct
}

// RecordReview awards the unconditional per-card points for the current
// flashcard. No-op outside flashcard rounds.
func (s *Session) RecordReview() {
	if s.Mode != ModeFlashcards || s.Done() {
		return
	}
	s.correct++
	s.points += s.Mode.Points()
}

// Correct returns the running correct-answer count (cards reviewed, for
// flashcards).
func (s *Session) Correct() int {
	return s.correct
}

// Points returns the points earned so far in this round.
func (s *Session) Points() int {
	return s.points
}

// Summary reports the finished round. Points were already awarded per item,
// so this only aggregates; nothing is double-counted.
func (s *Session) Summary() Summary {
	total := s.Len()
	var accuracy float64
	if total > 0 {
		accuracy = float64(s.correct) / float64(total) * 100
	}
	return Summary{
		SessionID: s.ID,
		Mode:      s.Mode,
		Category:  s.Category,
		Total:     total,
		Correct:   s.correct,
		Points:    s.points,
		Accuracy:  accuracy,
	}
}

// Summary is the result of one finished round.
type Summary struct {
	SessionID string
	Mode      Mode
	Category  string
	Total     int
	Correct   int
	Points    int
	Accuracy  float64 // percentage
}
