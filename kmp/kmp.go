package kmp

// FailureTable builds the prefix function of pattern.
// failure[0] is always 0 and failure[i] <= i.
// Returns ErrEmptyPattern if pattern is empty.
func FailureTable[T comparable](pattern []T) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	return failureTable(pattern), nil
}

// FailureTableString is FailureTable over the bytes of pattern.
func FailureTableString(pattern string) ([]int, error) {
	return FailureTable([]byte(pattern))
}

// FindAll returns the start index of every occurrence of pattern in text,
// overlapping ones included, in increasing order.
// A text without occurrences yields an empty, non-nil slice.
func FindAll[T comparable](text, pattern []T) ([]int, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	return m.FindAll(text), nil
}

// FindAllString is FindAll over bytes; the returned indices are byte offsets.
func FindAllString(text, pattern string) ([]int, error) {
	return FindAll([]byte(text), []byte(pattern))
}

// failureTable assumes len(pattern) > 0.
func failureTable[T comparable](pattern []T) []int {
	m := len(pattern)
	failure := make([]int, m)
	failure[0] = 0

	length := 0 // length of the current prefix that is also a suffix
	i := 1
	for i < m {
		switch {
		case pattern[i] == pattern[length]:
			// extend the border
			length++
			failure[i] = length
			i++
		case length != 0:
			// retry with the next shorter border, i stays
			length = failure[length-1]
		default:
			failure[i] = 0
			i++
		}
	}

	return failure
}

// scan walks text once and calls emit with each match start.
// It stops after limit matches when limit > 0 and returns the match count.
func scan[T comparable](text, pattern []T, failure []int, limit int, nonOverlapping bool, emit func(int)) int {
	n, m := len(text), len(pattern)
	found := 0

	textIndex, patternIndex := 0, 0
	for textIndex < n {
		if text[textIndex] == pattern[patternIndex] {
			textIndex++
			patternIndex++

			if patternIndex == m {
				if emit != nil {
					emit(textIndex - m)
				}
				found++
				if limit > 0 && found == limit {
					return found
				}
				if nonOverlapping {
					patternIndex = 0
				} else {
					patternIndex = failure[m-1]
				}
			}

			continue
		}

		if patternIndex != 0 {
			patternIndex = failure[patternIndex-1]
		} else {
			textIndex++
		}
	}

	return found
}
