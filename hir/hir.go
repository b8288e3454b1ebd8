// Package hir defines the structural tree produced by parsing a strex
// pattern and the handful of pure operations (word extraction,
// pretty-printing) that operate on it directly.
//
// An Hir is never retained past compilation: the compiler package walks
// it once to build a StrexSet and then drops it.
package hir

import "strings"

// Kind tags which variant an Hir node holds.
type Kind int

const (
	// KindLiteral is a nonempty run of identifier characters that must
	// appear verbatim in the haystack.
	KindLiteral Kind = iota
	// KindWild is the unbounded gap ".*".
	KindWild
	// KindConcat is an ordered concatenation of at least two children.
	KindConcat
	// KindOr is an alternation of at least two children.
	KindOr
)

// Hir is a node in a parsed strex pattern tree.
//
// Literal carries the identifier text when Kind is KindLiteral; Children
// carries the subtrees when Kind is KindConcat or KindOr. KindWild has
// neither. Concat and Or never wrap a single child — singleton groups
// collapse to that child during parsing (see Literal, Wild, Concat, Or).
type Hir struct {
	Kind     Kind
	Literal  string
	Children []Hir
}

// Literal builds a literal node.
func Literal(word string) Hir {
	return Hir{Kind: KindLiteral, Literal: word}
}

// Wild builds the unbounded-gap node.
var Wild = Hir{Kind: KindWild}

// Concat builds an ordered concatenation, collapsing a singleton to its
// only child.
func Concat(children []Hir) Hir {
	if len(children) == 1 {
		return children[0]
	}
	return Hir{Kind: KindConcat, Children: children}
}

// Or builds an alternation, collapsing a singleton to its only child.
func Or(children []Hir) Hir {
	if len(children) == 1 {
		return children[0]
	}
	return Hir{Kind: KindOr, Children: children}
}

// Words flattens h to the multiset of literal strings it contains,
// without descending into Wild. Used diagnostically; the compiler
// performs its own traversal for the real lowering pass.
func Words(h Hir) []string {
	switch h.Kind {
	case KindLiteral:
		return []string{h.Literal}
	case KindWild:
		return nil
	case KindConcat, KindOr:
		var out []string
		for _, c := range h.Children {
			out = append(out, Words(c)...)
		}
		return out
	default:
		return nil
	}
}

// String pretty-prints h back into strex source syntax. For any
// well-formed Hir tree produced by parser.Parse, parsing the result
// again reproduces an equal tree (singleton collapsing applied on both
// sides).
func (h Hir) String() string {
	var b strings.Builder
	h.write(&b)
	return b.String()
}

func (h Hir) write(b *strings.Builder) {
	switch h.Kind {
	case KindLiteral:
		b.WriteString(h.Literal)
	case KindWild:
		b.WriteString(".*")
	case KindConcat:
		for _, c := range h.Children {
			if c.Kind == KindConcat || c.Kind == KindOr {
				b.WriteByte('(')
				c.write(b)
				b.WriteByte(')')
				continue
			}
			c.write(b)
		}
	case KindOr:
		for i, c := range h.Children {
			if i > 0 {
				b.WriteByte('|')
			}
			if c.Kind == KindOr {
				b.WriteByte('(')
				c.write(b)
				b.WriteByte(')')
				continue
			}
			c.write(b)
		}
	}
}

// Equal reports whether a and b are the same tree shape, recursively.
func Equal(a, b Hir) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindLiteral:
		return a.Literal == b.Literal
	case KindWild:
		return true
	case KindConcat, KindOr:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsWild reports whether h is exactly the unconditional Wild node —
// the case the compiler must reject (spec: "Wild never appears as a
// top-level whole pattern").
func (h Hir) IsWild() bool {
	return h.Kind == KindWild
}
