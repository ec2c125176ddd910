// Package quizgen builds quiz questions and translation prompts from the
// vocabulary. Generation is pure sampling over static data: no state is
// kept between calls.
package quizgen

import (
	"math/rand"
	"sort"
	"time"

	"palabritas/internal/vocab"
)

// MaxDistractors is the number of wrong options drawn per question.
const MaxDistractors = 3

// Generator produces questions from a vocabulary.
type Generator struct {
	vocab *vocab.Vocabulary
	rng   *rand.Rand
}

// New creates a Generator with a time-seeded random source.
func New(v *vocab.Vocabulary) *Generator {
	return NewWithRand(v, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a Generator with the given random source. Tests use
// this for deterministic output.
func NewWithRand(v *vocab.Vocabulary, rng *rand.Rand) *Generator {
	return &Generator{vocab: v, rng: rng}
}

// MultipleChoice generates up to count multiple-choice questions. An empty
// category draws from the whole vocabulary. If the requested category holds
// fewer than count words, the pool widens to every category rather than
// failing. An empty pool yields nil; a pool smaller than count yields a
// shorter result.
func (g *Generator) MultipleChoice(category string, count int) []Question {
	pool := g.buildPool(category, count)
	if len(pool) == 0 || count <= 0 {
		return nil
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := pool
	if len(selected) > count {
		selected = selected[:count]
	}

	// Distinct target words of the whole candidate pool; distractors are
	// drawn from these.
	targetSet := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		targetSet[p.Target] = struct{}{}
	}

	questions := make([]Question, 0, len(selected))
	for _, p := range selected {
		options := g.buildOptions(p.Target, targetSet)
		questions = append(questions, Question{
			Category: p.Category,
			Prompt:   p.Source,
			Answer:   p.Target,
			Options:  options,
		})
	}
	return questions
}

// TranslationPrompts generates up to count translation prompts using the
// same pool-selection and shuffle-and-truncate rules as MultipleChoice.
func (g *Generator) TranslationPrompts(category string, count int) []Prompt {
	pool := g.buildPool(category, count)
	if len(pool) == 0 || count <= 0 {
		return nil
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// buildPool flattens the candidate categories into (category, source,
// target) triples. The pool widens to all categories when the requested
// category cannot fill count questions on its own.
func (g *Generator) buildPool(category string, count int) []Prompt {
	categories := g.vocab.Categories()
	if category != "" {
		if len(g.vocab.Words(category)) >= count {
			categories = []string{category}
		}
	}

	var pool []Prompt
	for _, cat := range categories {
		words := g.vocab.Words(cat)
		sources := make([]string, 0, len(words))
		for s := range words {
			sources = append(sources, s)
		}
		// Map order is random; sort so the only randomness is the rng.
		sort.Strings(sources)
		for _, s := range sources {
			pool = append(pool, Prompt{Category: cat, Source: s, Target: words[s]})
		}
	}
	return pool
}

// buildOptions draws up to MaxDistractors distinct wrong answers and mixes
// in the correct one. Questions may carry fewer than four options when the
// pool has too few distinct target words.
func (g *Generator) buildOptions(correct string, targetSet map[string]struct{}) []string {
	distractors := make([]string, 0, len(targetSet))
	for t := range targetSet {
		if t != correct {
			distractors = append(distractors, t)
		}
	}
	sort.Strings(distractors)
	g.rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > MaxDistractors {
		distractors = distractors[:MaxDistractors]
	}

	options := append(distractors, correct)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
