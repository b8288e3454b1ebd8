// Package compiler lowers a batch of hir.Hir pattern trees into a
// Compiled artifact: a deduplicated word list with a per-word job list,
// plus a chain graph recovering Concat/Or ordering and alternation
// semantics from what will become an unordered stream of literal hits.
//
// Compiled is automaton-agnostic: it names words by their canonical
// (possibly case-folded) string form and leaves building the actual
// literal-scanning automaton to the literalscan package. This mirrors
// the teacher's meta.CompileWithConfig, which likewise separates "what
// literals and strategy were chosen" from "which concrete automaton
// implements that strategy".
package compiler

import (
	"strings"

	"github.com/coregx/strex/hir"
)

// Chain is a compiled Concat node: the state machine tracking progress
// through one concatenation's literals.
type Chain struct {
	// FinalStep is the step value that signals this chain has
	// completed: one more than the number of non-Wild children
	// following the chain's first child (the chain starts at step 1
	// once its first child matches, and advances once per subsequent
	// non-Wild child observed in order).
	FinalStep StepId

	// Result is the job dispatched when this chain reaches FinalStep.
	Result WordJob

	// SubChains are chains nested inside this chain's children (created
	// while lowering an Or alternative that is itself a Concat). Killing
	// or completing this chain cascades to kill every sub-chain too.
	SubChains []ChainId
}

// Compiled is the output of Build: a deduplicated word list, the list
// of jobs attached to each word, and the chain graph those jobs
// reference. It carries no automaton — a literalscan.Builder turns
// Words into one.
type Compiled struct {
	// Words holds each distinct literal's canonical (case-folded, if
	// configured) form, indexed by WordId.
	Words []string

	// WordJobs[w] is the ordered list of actions to run when Words[w]
	// is observed in the haystack.
	WordJobs [][]WordJob

	// Chains holds every compiled Concat node, indexed by ChainId.
	Chains []Chain

	// NumPatterns is the number of input patterns that were lowered
	// (the exclusive upper bound on StrexId).
	NumPatterns int
}

// Builder lowers strex Hir trees one at a time into a shared word table
// and chain graph, in the style of the original source's
// StrexSetBuilder: AddPattern can be called repeatedly and reports a
// precise per-pattern error without discarding work already done for
// prior patterns, so the caller (the strex package) can attribute a
// CompileError to its originating pattern index.
type Builder struct {
	caseInsensitive bool
	maxWordLen      int

	count    int
	chains   []Chain
	words    []string
	wordToID map[string]WordId
	wordJobs [][]WordJob
}

// NewBuilder creates an empty Builder. maxWordLen <= 0 disables the
// per-literal length guard.
func NewBuilder(caseInsensitive bool, maxWordLen int) *Builder {
	return &Builder{
		caseInsensitive: caseInsensitive,
		maxWordLen:      maxWordLen,
		wordToID:        make(map[string]WordId),
	}
}

// AddPattern lowers one parsed pattern and assigns it the next StrexId
// (equal to the number of patterns already added). index and pattern
// are only used to annotate a returned CompileError.
func (b *Builder) AddPattern(index int, pattern string, h hir.Hir) error {
	matchID := StrexId(b.count)
	b.count++
	return b.lower(h, doMatch(matchID), nil, index, pattern)
}

// Build finalizes the word table and chain graph accumulated so far.
func (b *Builder) Build() *Compiled {
	return &Compiled{
		Words:       b.words,
		WordJobs:    b.wordJobs,
		Chains:      b.chains,
		NumPatterns: b.count,
	}
}

func (b *Builder) lower(h hir.Hir, result WordJob, enclosing *ChainId, index int, pattern string) error {
	switch h.Kind {
	case hir.KindLiteral:
		return b.lowerLiteral(h.Literal, result, index, pattern)
	case hir.KindOr:
		for _, child := range h.Children {
			if err := b.lower(child, result, enclosing, index, pattern); err != nil {
				return err
			}
		}
		return nil
	case hir.KindConcat:
		return b.lowerConcat(h.Children, result, enclosing, index, pattern)
	case hir.KindWild:
		// A bare Wild reaching lowering means the pattern (or one of its
		// Or alternatives) matches unconditionally.
		return &CompileError{Kind: ErrUnconditional, Index: index, Pattern: pattern}
	default:
		return &CompileError{Kind: ErrParse, Index: index, Pattern: pattern}
	}
}

func (b *Builder) lowerLiteral(word string, result WordJob, index int, pattern string) error {
	if word == "" {
		return &CompileError{Kind: ErrEmptyLiteral, Index: index, Pattern: pattern}
	}
	if b.maxWordLen > 0 && len(word) > b.maxWordLen {
		return &CompileError{Kind: ErrWordTooLong, Index: index, Pattern: pattern}
	}
	id := b.wordID(word)
	b.wordJobs[id] = append(b.wordJobs[id], result)
	return nil
}

func (b *Builder) wordID(word string) WordId {
	key := word
	if b.caseInsensitive {
		key = strings.ToLower(word)
	}
	if id, ok := b.wordToID[key]; ok {
		return id
	}
	id := WordId(len(b.words))
	b.wordToID[key] = id
	b.words = append(b.words, key)
	b.wordJobs = append(b.wordJobs, nil)
	return id
}

func (b *Builder) lowerConcat(children []hir.Hir, result WordJob, enclosing *ChainId, index int, pattern string) error {
	first, rest := children[0], children[1:]

	nonWild := 0
	for _, c := range rest {
		if !c.IsWild() {
			nonWild++
		}
	}

	cid := b.addChain(Chain{FinalStep: StepId(1 + nonWild), Result: result})
	if enclosing != nil {
		b.chains[*enclosing].SubChains = append(b.chains[*enclosing].SubChains, cid)
	}

	if err := b.lower(first, startChain(cid), &cid, index, pattern); err != nil {
		return err
	}

	step := StepId(1)
	for _, elem := range rest {
		if elem.IsWild() {
			continue
		}
		if err := b.lower(elem, stepChain(cid, step), &cid, index, pattern); err != nil {
			return err
		}
		step++
	}
	return nil
}

func (b *Builder) addChain(c Chain) ChainId {
	id := ChainId(len(b.chains))
	b.chains = append(b.chains, c)
	return id
}
