// Package strex compiles a batch of small, literal-and-gap patterns
// ("strex": a literal run, optionally separated by unbounded gaps
// written `.*`, with `|`-alternation) into one shared automaton that
// reports, for an arbitrary haystack, the set of patterns that match.
//
// strex trades the expressiveness of a general regex engine for a
// single shared scan: every literal word across every pattern is
// folded into one Aho-Corasick automaton, and a small per-pattern
// chain graph recovers ordering and alternation semantics from the
// resulting (possibly overlapping) stream of literal hits. This is the
// right tradeoff when the number of patterns is large and each pattern
// is simple — classifying a stream of haystacks against thousands of
// signature-style patterns in one pass, rather than running thousands
// of independent regex engines.
//
// Basic usage:
//
//	set, err := strex.Compile([]string{"salam.*aleyk", "foo.*bar"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, id := range set.Matches([]byte("salam aleyk")) {
//	    fmt.Println(id) // 0
//	}
//
// Advanced usage:
//
//	cfg := strex.DefaultConfig()
//	cfg.CaseInsensitive = true
//	set, err := strex.CompileWithConfig(patterns, cfg)
//
// Limitations: no character classes, anchors, bounded repetition,
// backreferences, or capture groups beyond alternation grouping; gaps
// are always unbounded; match positions are not reported, only which
// patterns matched.
package strex

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coregx/strex/compiler"
	"github.com/coregx/strex/hir"
	"github.com/coregx/strex/literalscan"
	"github.com/coregx/strex/metrics"
	"github.com/coregx/strex/parser"
	"github.com/coregx/strex/runtime"
)

// StrexId identifies one input pattern by its position in the slice
// passed to Compile.
type StrexId = compiler.StrexId

// StrexSet is a compiled batch of patterns: an immutable shared literal
// automaton plus chain graph. A StrexSet is safe for concurrent use by
// multiple goroutines — Matches allocates only per-call state and
// mutates the set only through its atomic Stats counter, the same
// immutable-after-compile
// shape as the teacher's meta.Engine (whose NFA/DFA/prefilters are
// likewise immutable after Compile, with only per-search state pooled).
type StrexSet struct {
	buildID  uuid.UUID
	eval     *runtime.Evaluator
	auto     *literalscan.Automaton
	patterns []string
	stats    Stats
	metrics  *metrics.Metrics
}

// Compile builds a StrexSet from patterns using DefaultConfig.
func Compile(patterns []string) (*StrexSet, error) {
	return CompileWithConfig(patterns, DefaultConfig())
}

// MustCompile is like Compile but panics on error. Useful for patterns
// known to be valid, e.g. a package-level var initializer.
func MustCompile(patterns []string) *StrexSet {
	set, err := Compile(patterns)
	if err != nil {
		panic("strex: Compile: " + err.Error())
	}
	return set
}

// CompileWithConfig builds a StrexSet from patterns using an explicit
// Config. Compilation is all-or-nothing: the first invalid pattern
// aborts the whole batch and the returned *CompileError names its
// Index in patterns.
func CompileWithConfig(patterns []string, cfg Config) (set *StrexSet, err error) {
	defer func() { cfg.Metrics.ObserveCompile(err) }()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if len(patterns) > cfg.MaxPatterns {
		err = &compiler.CompileError{Kind: compiler.ErrTooManyPatterns, Index: cfg.MaxPatterns, Pattern: ""}
		return nil, err
	}

	build := compiler.NewBuilder(cfg.CaseInsensitive, cfg.MaxWordLen)
	for i, p := range patterns {
		var h hir.Hir
		h, err = parser.Parse(p)
		if err != nil {
			err = &compiler.CompileError{Kind: compiler.ErrParse, Pattern: p, Index: i, Err: err}
			return nil, err
		}
		if err = build.AddPattern(i, p, h); err != nil {
			return nil, err
		}
	}
	compiled := build.Build()

	wb := literalscan.NewBuilder(cfg.CaseInsensitive)
	for _, w := range compiled.Words {
		wb.AddPattern(w)
	}
	auto, autoErr := wb.Build()
	if autoErr != nil {
		err = &compiler.CompileError{Kind: compiler.ErrAutomatonBuild, Err: autoErr}
		return nil, err
	}

	set = &StrexSet{
		buildID:  uuid.New(),
		eval:     runtime.New(compiled),
		auto:     auto,
		patterns: append([]string(nil), patterns...),
		metrics:  cfg.Metrics,
	}
	return set, nil
}

// Matches scans haystack and returns the sorted set of StrexIds whose
// pattern matched.
func (s *StrexSet) Matches(haystack []byte) []StrexId {
	s.stats.add()
	start := time.Now()
	ids := s.eval.Eval(s.auto, haystack)
	s.metrics.ObserveMatch(time.Since(start))
	return ids
}

// IsMatch reports whether any pattern in the set matches haystack.
func (s *StrexSet) IsMatch(haystack []byte) bool {
	return len(s.Matches(haystack)) > 0
}

// Len returns the number of patterns in the set.
func (s *StrexSet) Len() int {
	return len(s.patterns)
}

// Pattern returns the source text of pattern id, for diagnostics.
func (s *StrexSet) Pattern(id StrexId) string {
	return s.patterns[id]
}

// BuildID returns an opaque identifier stamped on this StrexSet at
// compile time, stable for the lifetime of the set. Useful for
// correlating which compiled generation produced a given match result
// when multiple StrexSets are swapped in and out of service.
func (s *StrexSet) BuildID() uuid.UUID {
	return s.buildID
}

// Stats returns a snapshot of this set's match-call statistics.
func (s *StrexSet) Stats() Stats {
	return s.stats.snapshot()
}

func (s *StrexSet) String() string {
	return fmt.Sprintf("strex.StrexSet{patterns=%d, buildID=%s}", len(s.patterns), s.buildID)
}

// ParseHir exposes the parser/Hir stage directly, for callers that want
// to inspect or pretty-print a pattern without compiling a full set.
func ParseHir(pattern string) (hir.Hir, error) {
	return parser.Parse(pattern)
}
