package kmp

// Matcher is a compiled pattern: the pattern plus its failure table.
// It is immutable after Compile and may be shared between goroutines.
type Matcher[T comparable] struct {
	pattern []T
	failure []int
	opts    Options
}

// Compile copies pattern, builds its failure table and applies opts.
// Returns ErrEmptyPattern for an empty pattern and ErrBadLimit for a
// negative WithLimit value.
func Compile[T comparable](pattern []T, opts ...Option) (*Matcher[T], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Limit < 0 {
		return nil, ErrBadLimit
	}

	p := append([]T(nil), pattern...)

	return &Matcher[T]{
		pattern: p,
		failure: failureTable(p),
		opts:    o,
	}, nil
}

// CompileString compiles the bytes of pattern.
func CompileString(pattern string, opts ...Option) (*Matcher[byte], error) {
	return Compile([]byte(pattern), opts...)
}

// Len returns the pattern length in symbols.
func (m *Matcher[T]) Len() int {
	return len(m.pattern)
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher[T]) Pattern() []T {
	return append([]T(nil), m.pattern...)
}

// Failure returns a copy of the failure table.
func (m *Matcher[T]) Failure() []int {
	return append([]int(nil), m.failure...)
}

// FindAll returns the start index of every reported occurrence in text.
func (m *Matcher[T]) FindAll(text []T) []int {
	matches := make([]int, 0)
	scan(text, m.pattern, m.failure, m.opts.Limit, m.opts.NonOverlapping, func(pos int) {
		matches = append(matches, pos)
	})

	return matches
}

// Index returns the start of the first occurrence in text, or -1.
func (m *Matcher[T]) Index(text []T) int {
	first := -1
	scan(text, m.pattern, m.failure, 1, false, func(pos int) {
		first = pos
	})

	return first
}

// Count returns the number of occurrences FindAll would report.
func (m *Matcher[T]) Count(text []T) int {
	return scan(text, m.pattern, m.failure, m.opts.Limit, m.opts.NonOverlapping, nil)
}

// Contains reports whether text holds at least one occurrence.
func (m *Matcher[T]) Contains(text []T) bool {
	return m.Index(text) >= 0
}
