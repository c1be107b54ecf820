// Package kmp finds every occurrence of a pattern inside a text in linear
// time using the Knuth–Morris–Pratt prefix function (failure table).
//
// 🚀 What is the failure table?
//
//	failure[i] is the length of the longest proper prefix of pattern[0..i]
//	that is also a suffix of it. On a mismatch the scan falls back to
//	failure[j-1] instead of re-reading text it has already matched,
//	so no text symbol is compared more than a constant number of times.
//
//	  pattern: a a b a a a
//	  failure: 0 1 0 1 2 2
//
// ✨ Key features:
//   - generic over any comparable symbol: bytes, runes, grapheme clusters
//   - overlapping matches by default ("aaaa" / "aa" → 0 1 2)
//   - compiled Matcher reusable across texts and safe for concurrent readers
//   - WithLimit and WithNonOverlapping options
//   - Graphemes helper for user-perceived characters (via rivo/uniseg)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/editorials/kmp"
//
//	idx, err := kmp.FindAllString("abcabcabc", "abc") // [0 3 6]
//
//	m, err := kmp.Compile([]rune("ab"), kmp.WithLimit(10))
//	first := m.Index([]rune("xxabab")) // 2
//
// Complexity:
//
//   - FailureTable: Time O(m), Memory O(m)
//   - FindAll:      Time O(n + m), Memory O(m) plus the result
//
// Errors:
//
//   - ErrEmptyPattern  pattern has no symbols
//   - ErrBadLimit      WithLimit received a negative value
package kmp
