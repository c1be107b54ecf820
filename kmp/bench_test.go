package kmp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/editorials/kmp"
)

// BenchmarkFindAll_Periodic scans 1 MiB of "a" for "aaaab": the worst case
// for a naive scan, linear here.
func BenchmarkFindAll_Periodic(b *testing.B) {
	text := []byte(strings.Repeat("a", 1<<20))
	m, err := kmp.CompileString("aaaab")
	if err != nil {
		b.Fatalf("Compile failed: %v", err)
	}

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.FindAll(text)
	}
}

// BenchmarkFailureTable_Long builds the table of a 64 KiB pattern.
func BenchmarkFailureTable_Long(b *testing.B) {
	pattern := strings.Repeat("abcab", 1<<13)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmp.FailureTableString(pattern); err != nil {
			b.Fatalf("FailureTable failed: %v", err)
		}
	}
}
