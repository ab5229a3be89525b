package rope

import "sync/atomic"

// MaxChildren is the maximum number of children an internal node may hold.
const MaxChildren = 16

// MinChildren is the point below which a non-root internal node is
// considered underfull.
const MinChildren = MaxChildren / 2

// node is the tagged union at the heart of the tree: either a leaf holding
// text, or an internal node holding Children. Nodes are shared by a small
// atomic refcount; makeUnique clones a single node (never a whole
// subtree) before any mutation touches a node that might be observed by
// another Rope, Slice, or ChunkCursor. Go's garbage collector owns the
// actual memory; refs exists purely to decide whether a node is safe to
// mutate in place.
type node struct {
	refs     int32
	isLeaf   bool
	leaf     *leaf
	children *children
}

func newLeafNode(l *leaf) *node {
	return &node{refs: 1, isLeaf: true, leaf: l}
}

func newInternalNode(c *children) *node {
	return &node{refs: 1, isLeaf: false, children: c}
}

func emptyNode() *node { return newLeafNode(newLeaf()) }

// retain bumps the node's refcount; called whenever a new handle (a Rope
// clone, or a parent's child slot after a shallow clone) starts pointing
// at this node.
func (n *node) retain() { atomic.AddInt32(&n.refs, 1) }

func (n *node) shared() bool { return atomic.LoadInt32(&n.refs) > 1 }

// cloneShallow copies this node's own storage (the leaf buffer, or the
// children's parallel arrays) but not the subtrees a children array points
// to -- it bumps each child's refcount instead, since after the clone both
// the original and the clone reference those children.
func (n *node) cloneShallow() *node {
	if n.isLeaf {
		return newLeafNode(n.leaf.clone())
	}
	c := n.children.cloneShallow()
	for i := 0; i < int(c.len); i++ {
		c.nodes[i].retain()
	}
	return newInternalNode(c)
}

// makeUnique returns a node equivalent to n that is safe to mutate
// in place: n itself if it has exactly one referencer, otherwise a fresh
// shallow clone (with n's own refcount decremented, since the caller's slot
// will be repointed at the clone).
func makeUnique(n *node) *node {
	if !n.shared() {
		return n
	}
	clone := n.cloneShallow()
	atomic.AddInt32(&n.refs, -1)
	return clone
}

func (n *node) textInfo() TextInfo {
	if n.isLeaf {
		return n.leaf.textInfo()
	}
	return n.children.sumInfo()
}

func (n *node) childCount() int {
	if n.isLeaf {
		return 0
	}
	return int(n.children.len)
}

// depth returns the number of levels below this node (0 for a leaf).
func (n *node) depth() int {
	if n.isLeaf {
		return 0
	}
	return 1 + n.children.nodes[0].depth()
}

// isUndersized reports whether this non-root node violates the minimum
// fill invariant.
func (n *node) isUndersized() bool {
	if n.isLeaf {
		return n.leaf.len() < MinBytes
	}
	return int(n.children.len) < MinChildren
}

// ---- Descent queries (byte <-> char <-> line, chunk lookups) ----

// byteToChar converts a byte offset within this subtree to a scalar-value
// offset.
func (n *node) byteToChar(b uint64) uint64 {
	if n.isLeaf {
		return Scan(n.leaf.text()[:clampInt(b, uint64(n.leaf.len()))]).Chars
	}
	idx, left := n.children.searchByte(b)
	return left.Chars + n.children.nodes[idx].byteToChar(b-left.Bytes)
}

// charToByte converts a scalar-value offset to a byte offset.
func (n *node) charToByte(c uint64) uint64 {
	if n.isLeaf {
		return charIdxToByteIdx(n.leaf.text(), c)
	}
	idx, left := n.children.searchScalar(c)
	return left.Bytes + n.children.nodes[idx].charToByte(c-left.Chars)
}

// byteToLine converts a byte offset to a line index under the given kind.
func (n *node) byteToLine(b uint64, kind LineBreakKind) uint64 {
	if n.isLeaf {
		return Scan(n.leaf.text()[:clampInt(b, uint64(n.leaf.len()))]).LineBreaks(kind)
	}
	idx, left := n.children.searchByte(b)
	return left.LineBreaks(kind) + n.children.nodes[idx].byteToLine(b-left.Bytes, kind)
}

// lineToByte converts a line index to the byte offset where that line
// starts, under the given kind. A line index equal to the total line count
// maps to the total byte length (the end of the text).
func (n *node) lineToByte(line uint64, kind LineBreakKind) uint64 {
	if n.isLeaf {
		return lineIdxToByteIdx(n.leaf.text(), line, kind)
	}
	idx, left := n.children.searchLine(line, kind)
	return left.Bytes + n.children.nodes[idx].lineToByte(line-left.LineBreaks(kind), kind)
}

func clampInt(b, max uint64) uint64 {
	if b > max {
		return max
	}
	return b
}

// getChunkAtByte returns (chunkText, chunkStartByte) for the leaf
// containing byte offset b.
func (n *node) getChunkAtByte(b uint64) (string, uint64) {
	if n.isLeaf {
		return n.leaf.text(), 0
	}
	idx, left := n.children.searchByte(b)
	text, start := n.children.nodes[idx].getChunkAtByte(b - left.Bytes)
	return text, start + left.Bytes
}
