package rope

// Position is a (line, column) pair. Both are 0-indexed and the column
// counts runes from the start of the line.
type Position struct {
	Line   int
	Column int
}

// Summary holds the cached metrics for a span of text. It forms a monoid
// under Add; node summaries are always the sum of their leaf summaries.
type Summary struct {
	// Runes is the rune count.
	Runes int

	// Bytes is the UTF-8 byte count.
	Bytes int

	// Newlines is the number of '\n' characters.
	Newlines int
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Runes:    s.Runes + other.Runes,
		Bytes:    s.Bytes + other.Bytes,
		Newlines: s.Newlines + other.Newlines,
	}
}

// computeSummary calculates the metrics for a string.
func computeSummary(s string) Summary {
	var sum Summary
	sum.Bytes = len(s)
	for _, r := range s {
		sum.Runes++
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// byteIndexOfRune returns the byte index of the given rune offset in s.
// Offsets past the end map to len(s).
func byteIndexOfRune(s string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(s)
}

// newlinesBeforeRune counts '\n' characters in the first runeOffset runes.
func newlinesBeforeRune(s string, runeOffset int) int {
	count := 0
	n := 0
	for _, r := range s {
		if n >= runeOffset {
			break
		}
		if r == '\n' {
			count++
		}
		n++
	}
	return count
}

// runeOffsetAfterNewline returns the rune offset immediately after the nth
// newline in s (1-indexed). Returns -1 if s has fewer than n newlines.
func runeOffsetAfterNewline(s string, n int) int {
	if n <= 0 {
		return -1
	}
	seen := 0
	idx := 0
	for _, r := range s {
		idx++
		if r == '\n' {
			seen++
			if seen == n {
				return idx
			}
		}
	}
	return -1
}
