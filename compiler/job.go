package compiler

// JobKind tags which variant a WordJob holds.
type JobKind int

const (
	// JobDoMatch records that StrexId has matched.
	JobDoMatch JobKind = iota
	// JobStartChain seeds a chain at step 1, optionally gated on a
	// parent chain being at an exact step.
	JobStartChain
	// JobStepChain advances a chain from Step to Step+1 if it is
	// currently at exactly Step.
	JobStepChain
)

// PreCondition gates a StartChain job on a parent chain being at an
// exact step. A job with no pre-condition has ChainID == noChain.
type PreCondition struct {
	ChainID ChainId
	Step    StepId
}

const noChain ChainId = ^ChainId(0)

// HasCondition reports whether p is a real gate rather than the
// noChain "no condition" marker. The zero value of PreCondition
// (ChainID 0) counts as a real gate.
func (p PreCondition) HasCondition() bool {
	return p.ChainID != noChain
}

// WordJob is a compile-time-bound action dispatched when its word is
// observed in the haystack. Exactly one of the Kind-specific fields is
// meaningful for a given Kind.
type WordJob struct {
	Kind JobKind

	// StrexID is meaningful for JobDoMatch.
	StrexID StrexId

	// ChainID is meaningful for JobStartChain and JobStepChain.
	ChainID ChainId

	// Step is meaningful for JobStepChain (advance-from step).
	Step StepId

	// PreCondition is meaningful for JobStartChain; when
	// PreCondition.HasCondition() is true, its own Step is the gate.
	PreCondition PreCondition
}

func doMatch(id StrexId) WordJob {
	return WordJob{Kind: JobDoMatch, StrexID: id}
}

func startChain(id ChainId) WordJob {
	return WordJob{Kind: JobStartChain, ChainID: id, PreCondition: PreCondition{ChainID: noChain}}
}

func stepChain(id ChainId, step StepId) WordJob {
	return WordJob{Kind: JobStepChain, ChainID: id, Step: step}
}
