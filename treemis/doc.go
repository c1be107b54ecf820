// Package treemis computes a maximum independent set of a tree with the
// classic include/exclude dynamic program.
//
// What:
//
//   - Nodes are numbered 1..n and joined by n-1 undirected edges.
//   - For every node u, processed after all of its children:
//     Include[u] = 1 + Σ Exclude[c]
//     Exclude[u] = Σ max(Include[c], Exclude[c])
//   - The answer is max(Include[root], Exclude[root]); one optimal set is
//     recovered top-down from the same table.
//
// Traversal:
//
//	The post-order walk keeps its own stack of (node, next-neighbor) frames
//	instead of recursing, so a path of 10⁶ nodes costs O(n) heap and
//	nothing on the goroutine stack.
//
// Validation:
//
//	NewTree/AddEdge bounds-check every id. MaxIndependentSet rejects edge
//	sets that are not a spanning tree: anything other than n-1 edges, or
//	nodes unreachable from the root (a cycle hides somewhere else).
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n) for adjacency, dp table, stack and result
//
// Errors:
//
//   - ErrNilTree           tree pointer is nil
//   - ErrInvalidNodeCount  n < 1
//   - ErrNodeOutOfRange    edge endpoint or root outside 1..n
//   - ErrSelfLoop          edge (u, u)
//   - ErrNotTree           edge count != n-1 or graph disconnected
//   - context.Canceled     traversal cancelled via WithContext
package treemis
