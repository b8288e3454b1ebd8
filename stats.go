package strex

import "sync/atomic"

// Stats tracks Matches-call statistics for a StrexSet, the same
// lock-free counting idiom as the teacher's meta.Engine.Stats: plain
// uint64 fields updated with atomic.AddUint64 and read back as a
// value-copy snapshot, so it costs nothing when unused and nothing is
// serialized under a lock.
type Stats struct {
	// MatchCalls counts calls to Matches/IsMatch.
	MatchCalls uint64
}

func (s *Stats) add() {
	atomic.AddUint64(&s.MatchCalls, 1)
}

func (s *Stats) snapshot() Stats {
	return Stats{MatchCalls: atomic.LoadUint64(&s.MatchCalls)}
}
