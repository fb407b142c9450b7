package rope

import (
	"fmt"
	"io"
	"strings"
)

// Rope is an immutable chunked tree of text. The zero value is an empty
// rope. Operations return new Rope values; the receiver is never modified.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}

	var leaves []*node
	for len(s) > 0 {
		end := TargetChunkBytes
		if end >= len(s) {
			leaves = append(leaves, newLeaf(s))
			break
		}
		// Back off to a rune boundary so chunks never split a rune.
		for end > 0 && !isRuneStart(s[end]) {
			end--
		}
		if end == 0 {
			end = TargetChunkBytes
		}
		leaves = append(leaves, newLeaf(s[:end]))
		s = s[end:]
	}

	return Rope{root: buildFromNodes(leaves)}
}

// FromReader creates a rope from the full contents of r.
func FromReader(r io.Reader) (Rope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rope{}, err
	}
	return FromString(string(data)), nil
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// Len returns the length in runes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Runes
}

// ByteLen returns the length in bytes.
func (r Rope) ByteLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Newlines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.summary.Bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end).
// Out-of-range bounds clamp to the valid range.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	start, end = clampRange(start, end, r.Len())
	if start >= end {
		return ""
	}

	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// RuneAt returns the rune at the given offset, or false if out of range.
func (r Rope) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= r.Len() {
		return 0, false
	}
	s := r.Slice(offset, offset+1)
	for _, c := range s {
		return c, true
	}
	return 0, false
}

// Insert inserts text at the given rune offset, clamped to [0, Len()].
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil {
		return FromString(text)
	}

	offset = clampOffset(offset, r.Len())
	if offset == 0 {
		return FromString(text).Concat(r)
	}
	if offset == r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the runes in [start, end), clamped to the valid range.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil {
		return r
	}
	start, end = clampRange(start, end, r.Len())
	if start >= end {
		return r
	}

	if start == 0 && end == r.Len() {
		return New()
	}
	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split divides the rope at the given rune offset.
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat joins two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: concatNodes(r.root, other.root)}
}

// LineStartOffset returns the rune offset of the start of the given line.
// Lines past the end clamp to the start of the last line.
func (r Rope) LineStartOffset(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.summary.Newlines {
		line = r.root.summary.Newlines
	}
	if line == 0 {
		return 0
	}
	return r.root.offsetAfterNewline(line)
}

// LineEndOffset returns the rune offset of the end of the given line,
// not including the newline.
func (r Rope) LineEndOffset(line int) int {
	if r.root == nil {
		return 0
	}
	lastLine := r.root.summary.Newlines
	if line >= lastLine {
		return r.Len()
	}
	if line < 0 {
		line = 0
	}
	// Start of the next line minus its newline.
	return r.root.offsetAfterNewline(line+1) - 1
}

// LineLen returns the rune length of the given line, without the newline.
func (r Rope) LineLen(line int) int {
	return r.LineEndOffset(line) - r.LineStartOffset(line)
}

// LineText returns the text of the given line, without the newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// OffsetToPosition converts a rune offset to a (line, column) position.
// Out-of-range offsets clamp to the nearest valid position.
func (r Rope) OffsetToPosition(offset int) Position {
	if r.root == nil || offset <= 0 {
		return Position{}
	}
	offset = clampOffset(offset, r.Len())

	line := r.root.newlinesBefore(offset)
	return Position{
		Line:   line,
		Column: offset - r.LineStartOffset(line),
	}
}

// PositionToOffset converts a (line, column) position to a rune offset.
// Lines clamp to the buffer; columns clamp to the line length.
func (r Rope) PositionToOffset(pos Position) int {
	if r.root == nil {
		return 0
	}

	line := pos.Line
	if line < 0 {
		line = 0
	}
	if line > r.root.summary.Newlines {
		line = r.root.summary.Newlines
	}

	start := r.LineStartOffset(line)
	length := r.LineEndOffset(line) - start

	col := pos.Column
	if col < 0 {
		col = 0
	}
	if col > length {
		col = length
	}
	return start + col
}

// Height returns the height of the tree. Useful for balance checks in tests.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Validate recomputes every cached summary from the leaf text and panics if
// any cache diverges. A divergence means later addressing would silently
// corrupt text, so it is not recoverable.
func (r Rope) Validate() {
	if r.root == nil {
		return
	}
	validateNode(r.root)
}

func validateNode(n *node) Summary {
	if n.isLeaf() {
		actual := computeSummary(n.chunk)
		if actual != n.summary {
			panic(fmt.Sprintf("rope: leaf summary %+v does not match text %+v", n.summary, actual))
		}
		return actual
	}

	var total Summary
	for i, child := range n.children {
		actual := validateNode(child)
		if actual != n.childSummaries[i] {
			panic(fmt.Sprintf("rope: child summary %+v does not match subtree %+v", n.childSummaries[i], actual))
		}
		total = total.Add(actual)
	}
	if total != n.summary {
		panic(fmt.Sprintf("rope: node summary %+v does not match children %+v", n.summary, total))
	}
	return total
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

func clampRange(start, end, max int) (int, int) {
	return clampOffset(start, max), clampOffset(end, max)
}
