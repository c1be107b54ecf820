// Package editorials collects small, self-contained algorithm editorials,
// each usable as a Go package and as a console command.
//
// 🚀 What is inside?
//
//	kmp/          Knuth–Morris–Pratt failure table and linear-time search
//	              for every (overlapping) occurrence of a pattern
//	treemis/      maximum independent set on a tree, include/exclude DP,
//	              iterative so deep trees are safe
//	cmd/kmp/      stdin-driven command over kmp
//	cmd/treemis/  stdin-driven command over treemis
//
// ✨ Conventions shared by every package:
//
//   - sentinel errors prefixed with the package name, wrapped with %w
//   - functional options with DefaultOptions()
//   - pure functions of their input: same input, same output
//
// Quick ASCII example (treemis):
//
//	1 ─ 2 ─ 3 ─ 4 ─ 5    →  size 3, nodes {1, 3, 5}
//
//	go get github.com/katalvlaran/editorials
package editorials
