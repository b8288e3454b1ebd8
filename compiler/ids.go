package compiler

// StrexId identifies one input pattern. Values are assigned in
// insertion order, 0..N, by Builder.AddPattern: each equals the number
// of patterns added before it.
type StrexId uint32

// WordId identifies one distinct literal string interned during
// compilation.
type WordId uint32

// ChainId identifies one compiled Concat node.
type ChainId uint32

// StepId denotes a position within a chain. 0 means "not yet started";
// 1 means the chain's first literal has matched; a chain's final_step
// denotes completion.
type StepId uint32
