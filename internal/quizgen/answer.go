package quizgen

import "strings"

// CheckAnswer compares the player's input against the correct answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - Matching is otherwise exact: no fuzzy matching, no partial credit,
//   and accents are significant
//
// Empty or whitespace-only input is simply wrong, never rejected.
func CheckAnswer(input, correct string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	return strings.EqualFold(input, strings.TrimSpace(correct))
}
