// Package runtime implements the single-pass chain evaluator: given a
// compiled word/chain graph and a literal scan of a haystack, it
// dispatches each literal hit's WordJobs (see dispatch for the order
// within one hit), recovering the
// Concat/Or structure of the original patterns from what the automaton
// reports as an unordered (if overlapping) stream of literal hits.
//
// This is a direct translation of the original source's ChainState: no
// backtracking, one map entry per live chain, cascading cancellation
// through sub-chains.
package runtime

import (
	"sort"

	"github.com/coregx/strex/compiler"
	"github.com/coregx/strex/literalscan"
)

// Evaluator holds the immutable compiled graph shared across
// evaluations. It carries no mutable state itself, so one Evaluator
// can be reused concurrently by multiple Eval calls.
type Evaluator struct {
	chains   []compiler.Chain
	wordJobs [][]compiler.WordJob
}

// New builds an Evaluator from a compiled word/chain graph.
func New(compiled *compiler.Compiled) *Evaluator {
	return &Evaluator{chains: compiled.Chains, wordJobs: compiled.WordJobs}
}

// Eval scans haystack with auto and returns the sorted, deduplicated
// set of StrexIds that matched.
func (e *Evaluator) Eval(auto *literalscan.Automaton, haystack []byte) []compiler.StrexId {
	s := &state{
		ev:      e,
		states:  make(map[compiler.ChainId]compiler.StepId),
		matches: make(map[compiler.StrexId]struct{}),
	}

	for _, hit := range auto.FindOverlapping(haystack) {
		s.dispatch(e.wordJobs[hit.Word])
	}

	out := make([]compiler.StrexId, 0, len(s.matches))
	for id := range s.matches {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// state is the per-evaluation mutable bookkeeping: live chain progress
// and accumulated matches. It is created fresh for every Eval call so
// concurrent evaluations against the same Evaluator never share state.
type state struct {
	ev      *Evaluator
	states  map[compiler.ChainId]compiler.StepId
	matches map[compiler.StrexId]struct{}
}

// dispatch runs every job attached to a single literal hit. A literal
// that both advances or completes an in-flight chain (StepChain,
// DoMatch) and seeds a new chain (StartChain) runs its non-seeding
// jobs first: StartChain unconditionally overwrites a chain's step,
// and a literal playing both roles (it opens one chain and also closes
// another, or re-opens its own) must not let the reseed erase the
// completion check for the very same hit.
func (s *state) dispatch(jobs []compiler.WordJob) {
	for _, job := range jobs {
		if job.Kind != compiler.JobStartChain {
			s.doWordJob(job)
		}
	}
	for _, job := range jobs {
		if job.Kind == compiler.JobStartChain {
			s.doWordJob(job)
		}
	}
}

// killChain retires a live chain and cascades to every chain nested
// inside it. A chain that was never started (or already retired) is a
// no-op, matching the source's HashMap::remove-returns-None guard.
func (s *state) killChain(id compiler.ChainId) {
	if _, live := s.states[id]; !live {
		return
	}
	delete(s.states, id)
	for _, sub := range s.ev.chains[id].SubChains {
		s.killChain(sub)
	}
}

// doStep advances a chain by one and, on reaching its final step,
// retires it and dispatches its result.
func (s *state) doStep(id compiler.ChainId) {
	next := s.states[id] + 1
	s.states[id] = next
	if next != s.ev.chains[id].FinalStep {
		return
	}
	result := s.ev.chains[id].Result
	s.killChain(id)
	s.doWordJob(result)
}

func (s *state) doWordJob(job compiler.WordJob) {
	switch job.Kind {
	case compiler.JobDoMatch:
		s.matches[job.StrexID] = struct{}{}

	case compiler.JobStartChain:
		if job.PreCondition.HasCondition() {
			cur, live := s.states[job.PreCondition.ChainID]
			if !live || cur != job.PreCondition.Step {
				return
			}
		}
		// Re-entry overwrites any prior progress without cancelling
		// sub-chains already seeded from it.
		s.states[job.ChainID] = 1

	case compiler.JobStepChain:
		if cur, live := s.states[job.ChainID]; live && cur == job.Step {
			s.doStep(job.ChainID)
		}
	}
}
