package rope

// nodeRemove removes the byte range [a, b) from n, which must already be
// unique down to every node this call touches. Underfull nodes produced
// along the way are repaired in place by zip-fixing against a neighbor
// before this call returns. The caller then still repairs fill and any
// split CRLF pair along the seam at a (zipFixSeam, fixSeamAtOffset) and
// pulls up a singular root.
func nodeRemove(n *node, a, b uint64) {
	if n.isLeaf {
		n.leaf.remove(int(a), int(b))
		return
	}

	startIdx, startLeft, endIdx, endLeft := n.children.searchByteRange(a, b)

	if startIdx == endIdx {
		child := makeUnique(n.children.nodes[startIdx])
		nodeRemove(child, a-startLeft.Bytes, b-startLeft.Bytes)
		n.children.nodes[startIdx] = child
		n.children.infos[startIdx] = child.textInfo()
		zipFixSingle(n, startIdx)
		return
	}

	startChild := makeUnique(n.children.nodes[startIdx])
	nodeRemove(startChild, a-startLeft.Bytes, n.children.infos[startIdx].Bytes)
	n.children.nodes[startIdx] = startChild
	n.children.infos[startIdx] = startChild.textInfo()

	endChild := makeUnique(n.children.nodes[endIdx])
	nodeRemove(endChild, 0, b-endLeft.Bytes)
	n.children.nodes[endIdx] = endChild
	n.children.infos[endIdx] = endChild.textInfo()

	for i := endIdx - 1; i > startIdx; i-- {
		n.children.removeAt(i)
	}

	// After removing the fully-covered middle children, the two touched
	// children are adjacent at startIdx and startIdx+1.
	zipFixPair(n, startIdx)
}

// zipFixSingle repairs child idx if it fell below the minimum fill,
// merging or redistributing with a neighbor.
func zipFixSingle(n *node, idx int) {
	if !n.children.nodes[idx].isUndersized() {
		return
	}
	if idx+1 < int(n.children.len) {
		zipFixPair(n, idx)
		return
	}
	if idx > 0 {
		zipFixPair(n, idx-1)
	}
}

// zipFixPair repairs the adjacent children at i and i+1, merging them into
// one (removing the slot at i+1) or redistributing their content so both
// reach the minimum fill.
func zipFixPair(n *node, i int) {
	if i < 0 || i+1 >= int(n.children.len) {
		if int(n.children.len) == 1 {
			compactIfLeaves(n)
		}
		return
	}
	a, b := n.children.nodes[i], n.children.nodes[i+1]
	if !a.isUndersized() && !b.isUndersized() {
		compactIfLeaves(n)
		return
	}
	a = makeUnique(a)
	b = makeUnique(b)
	n.children.nodes[i], n.children.nodes[i+1] = a, b

	merged := n.children.mergeDistribute(i, i+1)
	if merged {
		n.children.removeAt(i + 1)
	}
	compactIfLeaves(n)
}

func compactIfLeaves(n *node) {
	if int(n.children.len) > 0 && n.children.nodes[0].isLeaf {
		n.children.compactLeaves()
	}
}

// fixPairAt makes children i and i+1 unique and merges or redistributes
// them, removing the emptied slot on a merge. Returns true if they merged
// into one.
func fixPairAt(n *node, i int) bool {
	a := makeUnique(n.children.nodes[i])
	b := makeUnique(n.children.nodes[i+1])
	n.children.nodes[i], n.children.nodes[i+1] = a, b
	if n.children.mergeDistribute(i, i+1) {
		n.children.removeAt(i + 1)
		return true
	}
	return false
}

// zipFixSeam repairs node fill along the seam at absolute byte offset b
// within n (already unique). The per-level fixes done during removal
// handle direct siblings, but a merge can graft a still-undersized
// grandchild onto a healthy subtree's edge; this pass walks the seam from
// the top and repairs both edge chains wherever the seam separates two
// subtrees.
func zipFixSeam(n *node, b uint64) {
	if n.isLeaf {
		return
	}
	idx, left := n.children.searchByte(b)
	if b == left.Bytes && idx > 0 {
		if n.children.nodes[idx-1].isUndersized() || n.children.nodes[idx].isUndersized() {
			fixPairAt(n, idx-1)
		}
		idx, left = n.children.searchByte(b)
		if b == left.Bytes && idx > 0 {
			// The seam still separates two subtrees: repair the right edge
			// of the left one and the left edge of the right one.
			lch := makeUnique(n.children.nodes[idx-1])
			n.children.nodes[idx-1] = lch
			zipFixRight(lch)
			n.children.infos[idx-1] = lch.textInfo()

			rch := makeUnique(n.children.nodes[idx])
			n.children.nodes[idx] = rch
			zipFixLeft(rch)
			n.children.infos[idx] = rch.textInfo()

			if lch.isUndersized() || rch.isUndersized() {
				fixPairAt(n, idx-1)
			}
			compactIfLeaves(n)
			return
		}
	}

	// The seam is interior to a single child.
	child := makeUnique(n.children.nodes[idx])
	n.children.nodes[idx] = child
	zipFixSeam(child, b-left.Bytes)
	n.children.infos[idx] = child.textInfo()
	if child.isUndersized() {
		if idx+1 < int(n.children.len) {
			fixPairAt(n, idx)
		} else if idx > 0 {
			fixPairAt(n, idx-1)
		}
	}
	compactIfLeaves(n)
}

// pullUpSingularNodes replaces root with its sole child, repeatedly, while
// root is an internal node with exactly one child. Depth shrinks
// accordingly.
func pullUpSingularNodes(root *node) *node {
	for !root.isLeaf && root.children.len == 1 {
		root = root.children.nodes[0]
	}
	return root
}
