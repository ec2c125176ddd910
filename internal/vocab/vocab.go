// Package vocab holds the static Spanish–English vocabulary the game is
// played over. The word list is embedded at build time; the store is
// immutable for the lifetime of the process and safe for concurrent reads.
package vocab

import (
	"math/rand"
	"sort"
)

// Pair is a single source→target word pair.
type Pair struct {
	Source string // Spanish
	Target string // English
}

type categoryData struct {
	name  string
	words map[string]string
}

// Vocabulary is a read-only mapping of category name to word pairs.
type Vocabulary struct {
	order []string
	cats  map[string]map[string]string
}

// Builtin returns the vocabulary shipped with the game.
func Builtin() *Vocabulary {
	v := &Vocabulary{
		cats: make(map[string]map[string]string, len(builtinCategories)),
	}
	for _, c := range builtinCategories {
		v.order = append(v.order, c.name)
		v.cats[c.name] = c.words
	}
	return v
}

// Categories returns category names in display order.
func (v *Vocabulary) Categories() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// CategoryCount returns the number of categories.
func (v *Vocabulary) CategoryCount() int {
	return len(v.order)
}

// Words returns the source→target mapping for a category. Unknown
// categories yield an empty map, never an error.
func (v *Vocabulary) Words(category string) map[string]string {
	words := v.cats[category]
	out := make(map[string]string, len(words))
	for s, t := range words {
		out[s] = t
	}
	return out
}

// Pairs returns a category's word pairs sorted by source word. An empty
// category name returns every pair in the vocabulary.
func (v *Vocabulary) Pairs(category string) []Pair {
	var out []Pair
	if category != "" {
		for s, t := range v.cats[category] {
			out = append(out, Pair{Source: s, Target: t})
		}
	} else {
		for _, name := range v.order {
			for s, t := range v.cats[name] {
				out = append(out, Pair{Source: s, Target: t})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// WordCount returns the total number of word pairs across all categories.
func (v *Vocabulary) WordCount() int {
	total := 0
	for _, words := range v.cats {
		total += len(words)
	}
	return total
}

// RandomWord picks a uniformly random pair from the given category, or from
// the whole vocabulary when category is empty. ok is false only when the
// selected pool has no words.
func (v *Vocabulary) RandomWord(category string) (source, target string, ok bool) {
	var pool []Pair
	if category != "" {
		for s, t := range v.cats[category] {
			pool = append(pool, Pair{Source: s, Target: t})
		}
	} else {
		pool = v.Pairs("")
	}
	if len(pool) == 0 {
		return "", "", false
	}
	p := pool[rand.Intn(len(pool))]
	return p.Source, p.Target, true
}
