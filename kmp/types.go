package kmp

import "errors"

var (
	// ErrEmptyPattern is returned when the pattern has no symbols.
	// An empty pattern has no failure table and no well-defined match set.
	ErrEmptyPattern = errors.New("kmp: pattern is empty")

	// ErrBadLimit is returned when WithLimit is given a negative value.
	ErrBadLimit = errors.New("kmp: match limit must be >= 0")
)

// Option configures a Matcher. Use with Compile(pattern, opts...).
type Option func(*Options)

// Options holds the scan settings of a Matcher.
type Options struct {
	// Limit caps the number of reported matches. 0 means no limit.
	Limit int

	// NonOverlapping restarts the pattern from scratch after each match,
	// so reported occurrences never share text symbols.
	// Default is false: after a match the scan falls back to failure[m-1].
	NonOverlapping bool
}

// DefaultOptions returns Options with no limit and overlapping matches.
func DefaultOptions() Options {
	return Options{
		Limit:          0,
		NonOverlapping: false,
	}
}

// WithLimit stops the scan after k matches. k == 0 disables the limit.
func WithLimit(k int) Option {
	return func(o *Options) {
		o.Limit = k
	}
}

// WithNonOverlapping reports leftmost non-overlapping occurrences only.
func WithNonOverlapping() Option {
	return func(o *Options) {
		o.NonOverlapping = true
	}
}
