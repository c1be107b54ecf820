// Package tokens reads whitespace-delimited tokens from a stream, the way
// the editorial commands consume their standard input, and formats integer
// sequences for output.
package tokens

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// MaxTokenSize bounds a single token; texts longer than this are rejected.
const MaxTokenSize = 64 << 20

// ErrTooLong is returned for a token larger than MaxTokenSize.
var ErrTooLong = errors.New("tokens: token too long")

// Reader splits its input on Unicode whitespace.
type Reader struct {
	sc    *bufio.Scanner
	count int // tokens consumed so far
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Next returns the next token. what names the value in error messages.
// A stream that ends before the token yields a wrapped io.ErrUnexpectedEOF.
func (r *Reader) Next(what string) (string, error) {
	if !r.sc.Scan() {
		err := r.sc.Err()
		switch {
		case errors.Is(err, bufio.ErrTooLong):
			return "", fmt.Errorf("tokens: reading %s: %w", what, ErrTooLong)
		case err != nil:
			return "", fmt.Errorf("tokens: reading %s: %w", what, err)
		default:
			return "", fmt.Errorf("tokens: reading %s (token #%d): %w", what, r.count+1, io.ErrUnexpectedEOF)
		}
	}
	r.count++

	return r.sc.Text(), nil
}

// Int returns the next token parsed as a base-10 int.
func (r *Reader) Int(what string) (int, error) {
	tok, err := r.Next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tokens: %s: %w", what, err)
	}
	n, err := safecast.Convert[int](v)
	if err != nil {
		return 0, fmt.Errorf("tokens: %s %d: %w", what, v, err)
	}

	return n, nil
}

// Count returns the number of tokens consumed.
func (r *Reader) Count() int {
	return r.count
}

// JoinInts renders vals separated by single spaces.
func JoinInts(vals []int) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
