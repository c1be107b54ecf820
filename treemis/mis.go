package treemis

import "fmt"

// cancelCheckMask sets how often (in stack steps) the context is polled.
const cancelCheckMask = 1<<10 - 1

// frame is one entry of the explicit DFS stack.
type frame struct {
	node int
	next int // index into adj[node] of the next neighbor to try
}

// Solve builds a Tree from n and the 1-indexed edge list, then runs
// MaxIndependentSet on it.
func Solve(n int, edges [][2]int, opts ...Option) (*Result, error) {
	t, err := NewTree(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = t.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("treemis: Solve: edge #%d: %w", i, err)
		}
	}

	return MaxIndependentSet(t, opts...)
}

// MaxIndependentSet returns the size of a maximum independent set of t,
// one such set, and the per-node dp table.
//
// Steps:
//  1. Validate root and edge count (must be n-1).
//  2. Iterative post-order from the root; a node is finalized once all its
//     children are, and folds its values into its parent at that moment.
//  3. Reject if some node was never reached.
//  4. Walk the finished order backwards (parents first) to pick a set.
func MaxIndependentSet(t *Tree, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := t.checkNode(o.Root); err != nil {
		return nil, fmt.Errorf("treemis: root %d: %w", o.Root, err)
	}
	if t.edges != t.n-1 {
		return nil, fmt.Errorf("treemis: %d nodes need %d edges, got %d: %w",
			t.n, t.n-1, t.edges, ErrNotTree)
	}

	n := t.n
	include := make([]int, n+1)
	exclude := make([]int, n+1)
	parent := make([]int, n+1) // 0 marks the root
	visited := make([]bool, n+1)
	order := make([]int, 0, n)

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: o.Root})
	visited[o.Root] = true
	include[o.Root] = 1

	for steps := 0; len(stack) > 0; steps++ {
		if steps&cancelCheckMask == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}

		top := &stack[len(stack)-1]
		u := top.node
		if top.next < len(t.adj[u]) {
			v := t.adj[u][top.next]
			top.next++
			if visited[v] {
				// the parent, or a back edge in a non-tree
				continue
			}
			visited[v] = true
			parent[v] = u
			include[v] = 1
			stack = append(stack, frame{node: v})

			continue
		}

		// all children of u are final
		stack = stack[:len(stack)-1]
		order = append(order, u)
		if p := parent[u]; p != 0 {
			include[p] += exclude[u]
			exclude[p] += max(include[u], exclude[u])
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("treemis: %d of %d nodes reachable from %d: %w",
			len(order), n, o.Root, ErrNotTree)
	}

	return &Result{
		Size:    max(include[o.Root], exclude[o.Root]),
		Root:    o.Root,
		Nodes:   pickNodes(order, parent, include, exclude),
		Include: include,
		Exclude: exclude,
		Order:   order,
	}, nil
}

// pickNodes recovers one optimal set from the dp table. A node whose
// parent is taken is skipped; otherwise it is taken when including it is
// at least as good as leaving it out.
func pickNodes(order, parent, include, exclude []int) []int {
	taken := make([]bool, len(include))
	count := 0
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if p := parent[u]; p != 0 && taken[p] {
			continue
		}
		if include[u] >= exclude[u] {
			taken[u] = true
			count++
		}
	}

	nodes := make([]int, 0, count)
	for u := 1; u < len(taken); u++ {
		if taken[u] {
			nodes = append(nodes, u)
		}
	}

	return nodes
}
