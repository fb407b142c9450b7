package rope

import "strings"

// Tree shape constants.
const (
	// MaxChildren is the maximum children per internal node before the
	// tree grows another level.
	MaxChildren = 8

	// TargetChunkBytes is the preferred byte size of a leaf chunk when
	// building a rope from a string. Splits during editing may produce
	// smaller chunks; they are merged back on concat when possible.
	TargetChunkBytes = 512
)

// node is a node in the rope tree. Leaves (height 0) hold a text chunk;
// internal nodes hold children. Nodes are never mutated after construction.
type node struct {
	height  uint8
	summary Summary

	// Internal node fields (height > 0).
	children       []*node
	childSummaries []Summary

	// Leaf field (height == 0).
	chunk string
}

func newLeaf(chunk string) *node {
	return &node{
		height:  0,
		summary: computeSummary(chunk),
		chunk:   chunk,
	}
}

func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf("")
	}

	summaries := make([]Summary, len(children))
	var total Summary
	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &node{
		height:         children[0].height + 1,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.chunk)
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the runes in [start, end) to the builder.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		from := byteIndexOfRune(n.chunk, start)
		to := byteIndexOfRune(n.chunk, end)
		sb.WriteString(n.chunk[from:to])
		return
	}

	offset := 0
	for i, child := range n.children {
		childRunes := n.childSummaries[i].Runes
		childEnd := offset + childRunes

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childStop := childRunes
		if end < childEnd {
			childStop = end - offset
		}

		child.appendRange(sb, childStart, childStop)
		offset = childEnd
	}
}

// split divides the subtree at the given rune offset.
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeaf(""), n
	}
	if offset >= n.summary.Runes {
		return n, newLeaf("")
	}

	if n.isLeaf() {
		at := byteIndexOfRune(n.chunk, offset)
		return newLeaf(n.chunk[:at]), newLeaf(n.chunk[at:])
	}

	var leftChildren, rightChildren []*node
	current := 0
	for i, child := range n.children {
		childRunes := n.childSummaries[i].Runes

		switch {
		case current+childRunes <= offset:
			leftChildren = append(leftChildren, child)
		case current >= offset:
			rightChildren = append(rightChildren, child)
		default:
			l, r := child.split(offset - current)
			if l.summary.Runes > 0 {
				leftChildren = append(leftChildren, l)
			}
			if r.summary.Runes > 0 {
				rightChildren = append(rightChildren, r)
			}
		}
		current += childRunes
	}

	return buildFromNodes(leftChildren), buildFromNodes(rightChildren)
}

// buildFromNodes assembles a balanced subtree from nodes of mixed heights.
func buildFromNodes(nodes []*node) *node {
	switch len(nodes) {
	case 0:
		return newLeaf("")
	case 1:
		return nodes[0]
	}

	result := nodes[0]
	for _, n := range nodes[1:] {
		result = concatNodes(result, n)
	}
	return result
}

// concatNodes joins two subtrees. The shallower side is merged into the
// deeper side's edge child, so small edits fold into existing leaves and
// the height only grows when a node genuinely overflows.
func concatNodes(left, right *node) *node {
	if left == nil || left.summary.Runes == 0 {
		if right == nil {
			return newLeaf("")
		}
		return right
	}
	if right == nil || right.summary.Runes == 0 {
		return left
	}

	switch {
	case left.height == right.height:
		if left.isLeaf() {
			if left.summary.Bytes+right.summary.Bytes <= TargetChunkBytes {
				return newLeaf(left.chunk + right.chunk)
			}
			return newInternal([]*node{left, right})
		}
		combined := make([]*node, 0, len(left.children)+len(right.children))
		combined = append(combined, left.children...)
		combined = append(combined, right.children...)
		return nodeFromSiblings(combined)

	case left.height > right.height:
		last := len(left.children) - 1
		merged := concatNodes(left.children[last], right)
		children := make([]*node, 0, len(left.children)+1)
		children = append(children, left.children[:last]...)
		if merged.height < left.height {
			children = append(children, merged)
		} else {
			children = append(children, merged.children...)
		}
		return nodeFromSiblings(children)

	default:
		merged := concatNodes(left, right.children[0])
		children := make([]*node, 0, len(right.children)+1)
		if merged.height < right.height {
			children = append(children, merged)
		} else {
			children = append(children, merged.children...)
		}
		children = append(children, right.children[1:]...)
		return nodeFromSiblings(children)
	}
}

// nodeFromSiblings wraps same-height nodes in a parent, splitting in two
// when the child list overflows.
func nodeFromSiblings(children []*node) *node {
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternal(children)
	}
	mid := (len(children) + 1) / 2
	return newInternal([]*node{
		newInternal(children[:mid]),
		newInternal(children[mid:]),
	})
}

// newlinesBefore counts newlines in the first offset runes of the subtree.
func (n *node) newlinesBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.summary.Runes {
		return n.summary.Newlines
	}

	if n.isLeaf() {
		return newlinesBeforeRune(n.chunk, offset)
	}

	count := 0
	current := 0
	for i, child := range n.children {
		childRunes := n.childSummaries[i].Runes
		if current+childRunes <= offset {
			count += n.childSummaries[i].Newlines
			current += childRunes
			continue
		}
		return count + child.newlinesBefore(offset-current)
	}
	return count
}

// offsetAfterNewline returns the rune offset just past the nth newline
// (1-indexed) in the subtree, or -1 if there are fewer than n newlines.
func (n *node) offsetAfterNewline(nth int) int {
	if nth <= 0 || nth > n.summary.Newlines {
		return -1
	}

	if n.isLeaf() {
		return runeOffsetAfterNewline(n.chunk, nth)
	}

	runesSkipped := 0
	for i, child := range n.children {
		childNewlines := n.childSummaries[i].Newlines
		if nth <= childNewlines {
			within := child.offsetAfterNewline(nth)
			return runesSkipped + within
		}
		nth -= childNewlines
		runesSkipped += n.childSummaries[i].Runes
	}
	return -1
}

// recomputedSummary walks the subtree and recomputes the summary from leaf
// text, bypassing all caches. Used by Validate.
func (n *node) recomputedSummary() Summary {
	if n.isLeaf() {
		return computeSummary(n.chunk)
	}
	var total Summary
	for _, child := range n.children {
		total = total.Add(child.recomputedSummary())
	}
	return total
}
