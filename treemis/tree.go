package treemis

import "fmt"

// Tree is an undirected graph over nodes 1..n stored as adjacency slices.
// It is built with NewTree and AddEdge; shape is only checked by
// MaxIndependentSet.
type Tree struct {
	n     int
	adj   [][]int // adj[u] lists the neighbors of u; adj[0] is unused
	edges int
}

// NewTree returns an edgeless tree on nodes 1..n.
// Returns ErrInvalidNodeCount if n < 1.
func NewTree(n int) (*Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("treemis: NewTree(%d): %w", n, ErrInvalidNodeCount)
	}

	return &Tree{
		n:   n,
		adj: make([][]int, n+1),
	}, nil
}

// AddEdge joins u and v. Both must lie in 1..n and differ.
func (t *Tree) AddEdge(u, v int) error {
	if err := t.checkNode(u); err != nil {
		return fmt.Errorf("treemis: AddEdge(%d, %d): %w", u, v, err)
	}
	if err := t.checkNode(v); err != nil {
		return fmt.Errorf("treemis: AddEdge(%d, %d): %w", u, v, err)
	}
	if u == v {
		return fmt.Errorf("treemis: AddEdge(%d, %d): %w", u, v, ErrSelfLoop)
	}

	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
	t.edges++

	return nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return t.n
}

// EdgeCount returns the number of edges added so far.
func (t *Tree) EdgeCount() int {
	return t.edges
}

// Neighbors returns a copy of u's adjacency in insertion order.
func (t *Tree) Neighbors(u int) ([]int, error) {
	if err := t.checkNode(u); err != nil {
		return nil, fmt.Errorf("treemis: Neighbors(%d): %w", u, err)
	}

	return append([]int(nil), t.adj[u]...), nil
}

func (t *Tree) checkNode(u int) error {
	if u < 1 || u > t.n {
		return ErrNodeOutOfRange
	}

	return nil
}
