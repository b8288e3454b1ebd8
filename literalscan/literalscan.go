// Package literalscan wraps github.com/coregx/ahocorasick to provide
// the overlapping literal scan the runtime evaluator needs: every
// occurrence of every interned word in the haystack, in left-to-right
// order, including occurrences that overlap one another.
//
// This mirrors the teacher's meta.buildStrategyEngines, which builds an
// ahocorasick.Automaton from a literal.Seq via NewBuilder/AddPattern/
// Build. strex always uses Aho-Corasick (never the teacher's DFA/NFA
// strategies) since word matching, not general regex matching, is all
// the runtime evaluator needs from the automaton.
package literalscan

import (
	"github.com/coregx/ahocorasick"
)

// Hit is one occurrence of a word in a haystack.
type Hit struct {
	// Word is the index of the matched word, in the order it was added
	// to the Builder.
	Word int
	// Start and End bound the match in the haystack, End exclusive.
	Start, End int
}

// Builder accumulates words and produces an Automaton.
type Builder struct {
	inner *ahocorasick.Builder
}

// NewBuilder creates an empty Builder. When caseInsensitive is true,
// matching is done on the ASCII-folded haystack and patterns.
func NewBuilder(caseInsensitive bool) *Builder {
	inner := ahocorasick.NewBuilder()
	if caseInsensitive {
		inner.AsciiCaseInsensitive(true)
	}
	return &Builder{inner: inner}
}

// AddPattern registers one word. Words must be added in the order
// their Word index should correspond to.
func (b *Builder) AddPattern(word string) {
	b.inner.AddPattern([]byte(word))
}

// Build finalizes the automaton.
func (b *Builder) Build() (*Automaton, error) {
	auto, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return &Automaton{inner: auto}, nil
}

// Automaton scans a haystack for every occurrence of every word it was
// built from.
type Automaton struct {
	inner *ahocorasick.Automaton
}

// FindOverlapping returns every occurrence of every word in haystack,
// in left-to-right order by start position, including occurrences that
// overlap each other. This is the full-fidelity scan the runtime
// evaluator is built around: dropping overlapping or out-of-order hits
// would lose chain transitions the spec requires to fire.
func (a *Automaton) FindOverlapping(haystack []byte) []Hit {
	var hits []Hit
	for m := range a.inner.FindOverlappingIter(haystack) {
		hits = append(hits, Hit{Word: m.Pattern(), Start: m.Start(), End: m.End()})
	}
	return hits
}

// IsMatch reports whether any word occurs anywhere in haystack.
func (a *Automaton) IsMatch(haystack []byte) bool {
	return a.inner.IsMatch(haystack)
}
