package quizgen

import (
	"math/rand"
	"testing"

	"palabritas/internal/vocab"
)

func newTestGenerator() *Generator {
	return NewWithRand(vocab.Builtin(), rand.New(rand.NewSource(42)))
}

func TestMultipleChoiceSingleCategory(t *testing.T) {
	g := newTestGenerator()

	// Saludos has 15 words; pool is big enough, no fallback.
	questions := g.MultipleChoice("Saludos", 10)
	if len(questions) != 10 {
		t.Fatalf("got %d questions, want 10", len(questions))
	}

	words := vocab.Builtin().Words("Saludos")
	for i, q := range questions {
		if q.Category != "Saludos" {
			t.Errorf("question %d category = %q, want Saludos", i, q.Category)
		}
		if want := words[q.Prompt]; want != q.Answer {
			t.Errorf("question %d: prompt %q has answer %q, want %q", i, q.Prompt, q.Answer, want)
		}
	}
}

func TestMultipleChoiceOptions(t *testing.T) {
	g := newTestGenerator()

	for _, q := range g.MultipleChoice("", 30) {
		if len(q.Options) < 1 || len(q.Options) > 4 {
			t.Fatalf("question %q has %d options", q.Prompt, len(q.Options))
		}

		correctCount := 0
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("question %q has duplicate option %q", q.Prompt, opt)
			}
			seen[opt] = true
			if opt == q.Answer {
				correctCount++
			}
		}
		if correctCount != 1 {
			t.Errorf("question %q contains the answer %d times", q.Prompt, correctCount)
		}
	}
}

func TestMultipleChoicePoolExpansion(t *testing.T) {
	g := newTestGenerator()

	// Familia has 16 words; asking for 20 widens the pool to all categories.
	questions := g.MultipleChoice("Familia", 20)
	if len(questions) != 20 {
		t.Fatalf("got %d questions, want 20 after pool expansion", len(questions))
	}

	outside := false
	for _, q := range questions {
		if q.Category != "Familia" {
			outside = true
			break
		}
	}
	if !outside {
		// 20 questions cannot all come from a 16-word category anyway, but
		// make the expectation explicit.
		t.Error("pool expansion produced no questions outside Familia")
	}
}

func TestMultipleChoiceShortPool(t *testing.T) {
	g := newTestGenerator()

	v := vocab.Builtin()
	total := v.WordCount()
	questions := g.MultipleChoice("", total+50)
	if len(questions) != total {
		t.Errorf("got %d questions, want %d (whole pool)", len(questions), total)
	}
}

func TestMultipleChoiceEmptyPool(t *testing.T) {
	g := newTestGenerator()

	// An unknown category with a satisfiable count never matches any words:
	// count 0 means no questions at all.
	if qs := g.MultipleChoice("Saludos", 0); qs != nil {
		t.Errorf("count 0 returned %d questions", len(qs))
	}
}

func TestTranslationPrompts(t *testing.T) {
	g := newTestGenerator()

	prompts := g.TranslationPrompts("Frutas", 10)
	if len(prompts) != 10 {
		t.Fatalf("got %d prompts, want 10", len(prompts))
	}

	words := vocab.Builtin().Words("Frutas")
	seen := make(map[string]bool)
	for _, p := range prompts {
		if p.Category != "Frutas" {
			t.Errorf("prompt %q category = %q, want Frutas", p.Source, p.Category)
		}
		if words[p.Source] != p.Target {
			t.Errorf("prompt %q target = %q, want %q", p.Source, p.Target, words[p.Source])
		}
		if seen[p.Source] {
			t.Errorf("prompt %q drawn twice", p.Source)
		}
		seen[p.Source] = true
	}
}

func TestTranslationPromptsExpansion(t *testing.T) {
	g := newTestGenerator()

	prompts := g.TranslationPrompts("Colores", 20)
	if len(prompts) != 20 {
		t.Errorf("got %d prompts, want 20 after pool expansion", len(prompts))
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		correct string
		want    bool
	}{
		{"exact match", "hello", "hello", true},
		{"case-insensitive", "Hello", "hello", true},
		{"trailing space", "hello ", "hello", true},
		{"leading space", "  hello", "hello", true},
		{"empty input", "", "hello", false},
		{"whitespace only", "   ", "hello", false},
		{"wrong answer", "goodbye", "hello", false},
		{"accent mismatch", "adios", "adiós", false},
		{"multi-word", " Good Morning ", "good morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.input, tt.correct); got != tt.want {
				t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.input, tt.correct, got, tt.want)
			}
		})
	}
}
