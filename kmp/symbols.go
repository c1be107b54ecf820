package kmp

import "github.com/rivo/uniseg"

// Runes splits s into runes, so indices count code points.
func Runes(s string) []rune {
	return []rune(s)
}

// Graphemes splits s into extended grapheme clusters, so indices count
// user-perceived characters ("e" followed by U+0301 is one symbol).
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}

	return out
}
