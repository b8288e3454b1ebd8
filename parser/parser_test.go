package parser

import (
	"testing"

	"github.com/coregx/strex/hir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    hir.Hir
		wantErr bool
	}{
		{"literal", "foo", hir.Literal("foo"), false},
		{"wild only", ".*", hir.Wild, false},
		{
			"concat with gap",
			"foo.*bar",
			hir.Concat([]hir.Hir{hir.Literal("foo"), hir.Wild, hir.Literal("bar")}),
			false,
		},
		{
			"alternation",
			"salam|hello",
			hir.Or([]hir.Hir{hir.Literal("salam"), hir.Literal("hello")}),
			false,
		},
		{
			"grouped alternation then gap",
			"(salam|hello).*foo",
			hir.Concat([]hir.Hir{
				hir.Or([]hir.Hir{hir.Literal("salam"), hir.Literal("hello")}),
				hir.Wild,
				hir.Literal("foo"),
			}),
			false,
		},
		{
			"nested group with internal gap",
			"(sa.*lam|hello).*foo",
			hir.Concat([]hir.Hir{
				hir.Or([]hir.Hir{
					hir.Concat([]hir.Hir{hir.Literal("sa"), hir.Wild, hir.Literal("lam")}),
					hir.Literal("hello"),
				}),
				hir.Wild,
				hir.Literal("foo"),
			}),
			false,
		},
		{"empty", "", hir.Hir{}, true},
		{"dangling paren", "foo(bar", hir.Hir{}, true},
		{"bare dot", "foo.bar", hir.Hir{}, true},
		{"empty group", "()", hir.Hir{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !hir.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	srcs := []string{
		".*",
		"foo.*bar.*baz",
		"(foo|faaa).*bar.*baz",
		"salam.*aleyk.*ey.*foo",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			h, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", src, err)
			}
			pretty := h.String()
			if pretty != src {
				t.Fatalf("String() = %q, want %q", pretty, src)
			}
			h2, err := Parse(pretty)
			if err != nil {
				t.Fatalf("Parse(print(h)) failed: %v", err)
			}
			if !hir.Equal(h, h2) {
				t.Errorf("parse(print(h)) != h: %+v vs %+v", h2, h)
			}
		})
	}
}
