package quizgen

// Question is a generated multiple-choice question. Options holds the
// correct answer and up to three distractors, pre-shuffled.
type Question struct {
	Category string
	Prompt   string // Spanish word shown to the player
	Answer   string // correct English translation
	Options  []string
}

// Prompt is a bare translation prompt used by the free-text and flashcard
// modes. No distractors are generated.
type Prompt struct {
	Category string
	Source   string
	Target   string
}
