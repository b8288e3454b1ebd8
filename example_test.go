package strex_test

import (
	"fmt"

	"github.com/coregx/strex"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	set, err := strex.Compile([]string{"salam.*aleyk", "foo.*bar"})
	if err != nil {
		panic(err)
	}

	for _, id := range set.Matches([]byte("salam aleyk")) {
		fmt.Println(id)
	}
	// Output: 0
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	set := strex.MustCompile([]string{"hello"})
	fmt.Println(set.IsMatch([]byte("hello world")))
	// Output: true
}

// ExampleCompileWithConfig demonstrates case-insensitive matching.
func ExampleCompileWithConfig() {
	cfg := strex.DefaultConfig()
	cfg.CaseInsensitive = true

	set, err := strex.CompileWithConfig([]string{"SALAM"}, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println(set.IsMatch([]byte("salam")))
	// Output: true
}

// ExampleStrexSet_Matches demonstrates alternation inside a pattern.
func ExampleStrexSet_Matches() {
	set := strex.MustCompile([]string{"(salam|hello).*foo"})
	fmt.Println(set.Matches([]byte("hello there foo")))
	// Output: [0]
}
