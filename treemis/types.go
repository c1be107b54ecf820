package treemis

import (
	"context"
	"errors"
)

var (
	// ErrNilTree is returned when a nil *Tree is passed to MaxIndependentSet.
	ErrNilTree = errors.New("treemis: tree is nil")

	// ErrInvalidNodeCount indicates a tree with fewer than one node.
	ErrInvalidNodeCount = errors.New("treemis: node count must be >= 1")

	// ErrNodeOutOfRange indicates a node id outside 1..n.
	ErrNodeOutOfRange = errors.New("treemis: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("treemis: self-loop not allowed")

	// ErrNotTree indicates the edge set is not a spanning tree of 1..n.
	ErrNotTree = errors.New("treemis: edge set does not form a tree")
)

// Option configures MaxIndependentSet and Solve.
type Option func(*Options)

// Options holds the traversal settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Root is the node the post-order walk starts from. Default 1.
	// The set size does not depend on it; the recovered set may.
	Root int
}

// DefaultOptions returns Background context and root 1.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Root: 1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRoot sets the traversal root.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// Result is the outcome of MaxIndependentSet.
type Result struct {
	// Size is the cardinality of a maximum independent set.
	Size int

	// Root is the node the traversal started from.
	Root int

	// Nodes is one maximum independent set, ascending.
	Nodes []int

	// Include[u] is the best size in u's subtree with u chosen.
	// Indexed by node id; index 0 is unused.
	Include []int

	// Exclude[u] is the best size in u's subtree with u left out.
	// Indexed by node id; index 0 is unused.
	Exclude []int

	// Order lists the nodes in the post-order they were finalized.
	Order []int
}
