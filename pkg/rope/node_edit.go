package rope

// nodeInsert inserts s at byte offset b within n, which must already be
// unique (the caller is responsible for the copy-on-write path down to
// n). It returns a residual right-sibling node when n overflowed and had
// to split; the caller is responsible for threading that residual into
// its own parent (growing the tree by one level at the root if needed).
//
// nodeInsert assumes len(s) is at most MaxBytes; Rope.Insert routes
// longer insertions through the Builder instead (see
// rope.go), so this never needs to recurse to build more than one extra
// leaf per call.
func nodeInsert(n *node, b uint64, s string) *node {
	if n.isLeaf {
		return leafInsert(n, b, s)
	}

	idx, left := n.children.searchByte(b)
	child := makeUnique(n.children.nodes[idx])
	residual := nodeInsert(child, b-left.Bytes, s)
	n.children.nodes[idx] = child
	n.children.infos[idx] = child.textInfo()

	if residual == nil {
		return nil
	}
	right := n.children.insertSplit(idx+1, residual.textInfo(), residual)
	if right == nil {
		return nil
	}
	return newInternalNode(right)
}

func leafInsert(n *node, b uint64, s string) *node {
	l := n.leaf
	if l.len()+len(s) <= MaxBytes {
		l.insert(int(b), s)
		return nil
	}

	combined := l.text()[:b] + s + l.text()[b:]
	splitAt := findGoodSplit(len(combined)/2, combined, true)
	if splitAt == 0 || splitAt == len(combined) {
		// Degenerate (e.g. a single unsplittable CRLF-guarded run); fall
		// back to the midpoint rounded to a char boundary.
		splitAt = len(combined) / 2
		for splitAt < len(combined) && !isCharBoundary(combined, splitAt) {
			splitAt++
		}
	}

	*l = *newLeafFromString(combined[:splitAt])
	right := newLeafFromString(combined[splitAt:])
	return newLeafNode(right)
}
