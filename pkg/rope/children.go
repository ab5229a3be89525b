package rope

// children holds an internal node's child subtrees as two fixed-capacity
// parallel arrays, so descent-by-metric needs no child dereference: the
// TextInfo of child i is read directly out of infos[i].
type children struct {
	infos [MaxChildren]TextInfo
	nodes [MaxChildren]*node
	len   uint8
}

func newChildren() *children { return &children{} }

func (c *children) cloneShallow() *children {
	nc := *c
	return &nc
}

func (c *children) sumInfo() TextInfo {
	var t TextInfo
	for i := 0; i < int(c.len); i++ {
		t = t.Combine(c.infos[i])
	}
	return t
}

func (c *children) push(info TextInfo, n *node) {
	if int(c.len) >= MaxChildren {
		panic("rope: children overflow")
	}
	c.infos[c.len] = info
	c.nodes[c.len] = n
	c.len++
}

func (c *children) pop() {
	if c.len == 0 {
		panic("rope: children underflow")
	}
	c.len--
	c.nodes[c.len] = nil
}

func (c *children) insertAt(i int, info TextInfo, n *node) {
	if int(c.len) >= MaxChildren {
		panic("rope: children overflow")
	}
	for j := int(c.len); j > i; j-- {
		c.infos[j] = c.infos[j-1]
		c.nodes[j] = c.nodes[j-1]
	}
	c.infos[i] = info
	c.nodes[i] = n
	c.len++
}

func (c *children) removeAt(i int) {
	for j := i; j < int(c.len)-1; j++ {
		c.infos[j] = c.infos[j+1]
		c.nodes[j] = c.nodes[j+1]
	}
	c.len--
	c.nodes[c.len] = nil
}

// pushSplit appends (info, n) to c; if that overflows MaxChildren, it
// instead moves the right half of c (including the new item) into a
// freshly returned sibling children block.
func (c *children) pushSplit(info TextInfo, n *node) *children {
	if int(c.len) < MaxChildren {
		c.push(info, n)
		return nil
	}
	return c.insertSplit(int(c.len), info, n)
}

// insertSplit inserts (info, n) at index i; if c would overflow, the right
// half (post-insert) is moved into a new children block, which is
// returned. A nil return means no split was needed.
func (c *children) insertSplit(i int, info TextInfo, n *node) *children {
	if int(c.len) < MaxChildren {
		c.insertAt(i, info, n)
		return nil
	}

	// Build the logical post-insert sequence across the existing entries
	// plus the new one, then divide it roughly in half.
	total := int(c.len) + 1
	mid := total / 2

	right := newChildren()
	// Walk logical index 0..total, taking indices >= mid into right and
	// leaving < mid in place (compacted).
	var tmpInfos [MaxChildren + 1]TextInfo
	var tmpNodes [MaxChildren + 1]*node
	k := 0
	for j := 0; j < int(c.len)+1; j++ {
		if j == i {
			tmpInfos[k] = info
			tmpNodes[k] = n
			k++
		}
		if j < int(c.len) {
			tmpInfos[k] = c.infos[j]
			tmpNodes[k] = c.nodes[j]
			k++
		}
	}

	c.len = 0
	for j := 0; j < mid; j++ {
		c.push(tmpInfos[j], tmpNodes[j])
	}
	for j := mid; j < total; j++ {
		right.push(tmpInfos[j], tmpNodes[j])
	}
	return right
}

// mergeDistribute merges or rebalances children i and j (which must be
// adjacent, j == i+1). It returns true if the two merged into one (leaving
// a hole at j that the caller must remove), or false if it instead
// redistributed content so both sides reach at least the minimum fill.
func (c *children) mergeDistribute(i, j int) bool {
	a, b := c.nodes[i], c.nodes[j]
	merged := mergeOrRedistributeNodes(a, b)
	c.infos[i] = a.textInfo()
	if !merged {
		c.infos[j] = b.textInfo()
	}
	return merged
}

// mergeOrRedistributeNodes merges b into a (returning true) if their
// combined content fits in one node, or otherwise redistributes content
// between them so both reach at least the minimum fill (returning false).
// a and b must be the same kind (both leaves or both internal) and, if
// internal, the same depth -- true of any two adjacent siblings.
func mergeOrRedistributeNodes(a, b *node) bool {
	if a.isLeaf {
		if a.leaf.len()+b.leaf.len() <= MaxBytes {
			a.leaf.append(b.leaf)
			return true
		}
		a.leaf.distribute(b.leaf)
		return false
	}

	combinedCount := int(a.children.len) + int(b.children.len)
	if combinedCount <= MaxChildren {
		for k := 0; k < int(b.children.len); k++ {
			a.children.push(b.children.infos[k], b.children.nodes[k])
		}
		return true
	}

	// Redistribute children between a and b evenly.
	var tmpInfos [2 * MaxChildren]TextInfo
	var tmpNodes [2 * MaxChildren]*node
	k := 0
	for x := 0; x < int(a.children.len); x++ {
		tmpInfos[k], tmpNodes[k] = a.children.infos[x], a.children.nodes[x]
		k++
	}
	for x := 0; x < int(b.children.len); x++ {
		tmpInfos[k], tmpNodes[k] = b.children.infos[x], b.children.nodes[x]
		k++
	}
	mid := combinedCount / 2
	a.children.len = 0
	for x := 0; x < mid; x++ {
		a.children.push(tmpInfos[x], tmpNodes[x])
	}
	b.children.len = 0
	for x := mid; x < combinedCount; x++ {
		b.children.push(tmpInfos[x], tmpNodes[x])
	}
	return false
}

// compactLeaves merges adjacent leaf children as long as their combined
// length stays within MaxBytes, shrinking c in place.
func (c *children) compactLeaves() {
	i := 0
	for i < int(c.len)-1 {
		a, b := c.nodes[i], c.nodes[i+1]
		if a.isLeaf && b.isLeaf && a.leaf.len()+b.leaf.len() <= MaxBytes {
			a = makeUnique(a)
			a.leaf.append(b.leaf)
			c.nodes[i] = a
			c.infos[i] = a.leaf.textInfo()
			c.removeAt(i + 1)
			continue
		}
		i++
	}
}

// ---- Search operations: the central descent primitives. ----

// searchByte returns the child whose subtree contains global byte offset
// b, and the accumulated TextInfo of every child before it. A byte offset
// equal to the total length returns the last child.
func (c *children) searchByte(b uint64) (int, TextInfo) {
	var left TextInfo
	for i := 0; i < int(c.len)-1; i++ {
		if b < left.Bytes+c.infos[i].Bytes {
			return i, left
		}
		left = left.Combine(c.infos[i])
	}
	return int(c.len) - 1, left
}

func (c *children) searchScalar(ch uint64) (int, TextInfo) {
	var left TextInfo
	for i := 0; i < int(c.len)-1; i++ {
		if ch < left.Chars+c.infos[i].Chars {
			return i, left
		}
		left = left.Combine(c.infos[i])
	}
	return int(c.len) - 1, left
}

// searchLine finds the child containing the start of line `line`. The
// comparison is inclusive: a line whose break ends exactly at a child's
// last byte is resolved within that child (whose leaf scan then reports
// the one-past-the-break offset), which also keeps line starts interior
// to a child from being misattributed to its successor.
func (c *children) searchLine(line uint64, kind LineBreakKind) (int, TextInfo) {
	var left TextInfo
	for i := 0; i < int(c.len)-1; i++ {
		if line <= left.LineBreaks(kind)+c.infos[i].LineBreaks(kind) {
			return i, left
		}
		left = left.Combine(c.infos[i])
	}
	return int(c.len) - 1, left
}

// searchByteRange returns the (child, leftInfo) pair for both start and
// end of a byte range in one pass, for batched range descents (used by
// Remove).
func (c *children) searchByteRange(start, end uint64) (startIdx int, startLeft TextInfo, endIdx int, endLeft TextInfo) {
	startIdx, startLeft = c.searchByte(start)
	endIdx, endLeft = startIdx, startLeft
	for endIdx < int(c.len)-1 && end >= endLeft.Bytes+c.infos[endIdx].Bytes {
		endLeft = endLeft.Combine(c.infos[endIdx])
		endIdx++
	}
	return
}
