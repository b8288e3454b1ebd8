// Package parser turns strex source text into an hir.Hir tree.
//
// Grammar (whitespace-free):
//
//	expr := alt
//	alt  := seq ("|" seq)*
//	seq  := atom+
//	atom := ".*" | ident | "(" alt ")"
//	ident := [A-Za-z0-9_]+
//
// The parser is pure and stateless; callers get either a fully-formed
// Hir or a ParseError, never a partial tree.
package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/coregx/strex/hir"
)

// ParseError reports a failure to parse strex source text.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strex: parse error in %q: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var strexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Wild", Pattern: `\.\*`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_]+`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

// pAlt is the participle grammar for alt := seq ("|" seq)*.
type pAlt struct {
	Seqs []*pSeq `parser:"@@ ( Pipe @@ )*"`
}

// pSeq is the participle grammar for seq := atom+.
type pSeq struct {
	Atoms []*pAtom `parser:"@@+"`
}

// pAtom is the participle grammar for atom := ".*" | ident | "(" alt ")".
type pAtom struct {
	Wild  bool    `parser:"( @Wild"`
	Ident *string `parser:"| @Ident"`
	Group *pAlt   `parser:"| LParen @@ RParen )"`
}

var strexParser = participle.MustBuild[pAlt](
	participle.Lexer(strexLexer),
)

// Parse parses strex source text into an Hir tree.
func Parse(src string) (hir.Hir, error) {
	parsed, err := strexParser.ParseString("", src)
	if err != nil {
		return hir.Hir{}, &ParseError{Source: src, Err: err}
	}
	return convertAlt(parsed), nil
}

func convertAlt(a *pAlt) hir.Hir {
	seqs := make([]hir.Hir, len(a.Seqs))
	for i, s := range a.Seqs {
		seqs[i] = convertSeq(s)
	}
	return hir.Or(seqs)
}

func convertSeq(s *pSeq) hir.Hir {
	atoms := make([]hir.Hir, len(s.Atoms))
	for i, a := range s.Atoms {
		atoms[i] = convertAtom(a)
	}
	return hir.Concat(atoms)
}

func convertAtom(a *pAtom) hir.Hir {
	switch {
	case a.Wild:
		return hir.Wild
	case a.Ident != nil:
		return hir.Literal(*a.Ident)
	default:
		return convertAlt(a.Group)
	}
}
