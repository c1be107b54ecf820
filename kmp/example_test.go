package kmp_test

import (
	"fmt"

	"github.com/katalvlaran/editorials/kmp"
)

// ExampleFindAllString shows overlapping occurrences being reported.
func ExampleFindAllString() {
	idx, err := kmp.FindAllString("aaaa", "aa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(idx)

	// Output:
	// [0 1 2]
}

// ExampleFailureTableString prints the prefix function of a pattern
// with nested borders.
func ExampleFailureTableString() {
	failure, _ := kmp.FailureTableString("ABABCABAB")
	fmt.Println(failure)

	// Output:
	// [0 0 1 2 0 1 2 3 4]
}

// ExampleCompile reuses one compiled pattern over several texts.
func ExampleCompile() {
	m, err := kmp.Compile(kmp.Runes("ab"), kmp.WithNonOverlapping())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, text := range []string{"abab", "xaby", "bbb"} {
		fmt.Println(text, m.FindAll(kmp.Runes(text)))
	}

	// Output:
	// abab [0 2]
	// xaby [1]
	// bbb []
}
