package rope

// nodeAppend joins left and right into one tree, equalizing depth by
// attaching the shallower tree at the matching depth inside the taller
// one, splitting and growing a new root only if that attachment overflows
// a node along the way.
func nodeAppend(left, right *node) *node {
	left = makeUnique(left)
	right = makeUnique(right)
	ld, rd := left.depth(), right.depth()

	if ld == rd {
		// A root may legally be undersized, but once it becomes a child
		// of the new root it no longer may; merge or redistribute first.
		if left.isUndersized() || right.isUndersized() {
			if mergeOrRedistributeNodes(left, right) {
				return left
			}
		}
		c := newChildren()
		c.push(left.textInfo(), left)
		c.push(right.textInfo(), right)
		return newInternalNode(c)
	}

	if ld > rd {
		newLeft, residual := attachRight(left, right, ld-rd)
		if residual == nil {
			return newLeft
		}
		c := newChildren()
		c.push(newLeft.textInfo(), newLeft)
		c.push(residual.textInfo(), residual)
		return newInternalNode(c)
	}

	newRight, residual := attachLeft(right, left, rd-ld)
	if residual == nil {
		return newRight
	}
	c := newChildren()
	c.push(residual.textInfo(), residual)
	c.push(newRight.textInfo(), newRight)
	return newInternalNode(c)
}

// attachRight grafts other onto the rightmost spine of n, d levels down
// (other's depth plus d equals n's depth). It returns the updated n and,
// if attaching overflowed a node somewhere along the spine, a residual
// sibling that belongs immediately after the updated n in n's own parent.
func attachRight(n *node, other *node, d int) (*node, *node) {
	n = makeUnique(n)
	if d == 1 {
		lastIdx := int(n.children.len) - 1
		last := makeUnique(n.children.nodes[lastIdx])
		n.children.nodes[lastIdx] = last
		if last.isLeaf == other.isLeaf {
			if mergeOrRedistributeNodes(last, other) {
				n.children.infos[lastIdx] = last.textInfo()
				return n, nil
			}
			n.children.infos[lastIdx] = last.textInfo()
		}
		right := n.children.pushSplit(other.textInfo(), other)
		if right == nil {
			return n, nil
		}
		return n, newInternalNode(right)
	}

	lastIdx := int(n.children.len) - 1
	child := makeUnique(n.children.nodes[lastIdx])
	newChild, res := attachRight(child, other, d-1)
	n.children.nodes[lastIdx] = newChild
	n.children.infos[lastIdx] = newChild.textInfo()
	if res == nil {
		return n, nil
	}
	right := n.children.pushSplit(res.textInfo(), res)
	if right == nil {
		return n, nil
	}
	return n, newInternalNode(right)
}

// attachLeft is attachRight's mirror image: it grafts other onto the
// leftmost spine of n. Because n always sits at index 0 of its own
// parent on that spine, an overflow residual still belongs immediately
// after n, exactly as in attachRight.
func attachLeft(n *node, other *node, d int) (*node, *node) {
	n = makeUnique(n)
	if d == 1 {
		first := makeUnique(n.children.nodes[0])
		if first.isLeaf == other.isLeaf {
			if mergeOrRedistributeNodes(other, first) {
				n.children.nodes[0] = other
				n.children.infos[0] = other.textInfo()
				return n, nil
			}
		}
		n.children.nodes[0] = first
		n.children.infos[0] = first.textInfo()
		right := n.children.insertSplit(0, other.textInfo(), other)
		if right == nil {
			return n, nil
		}
		return n, newInternalNode(right)
	}

	first := makeUnique(n.children.nodes[0])
	newFirst, res := attachLeft(first, other, d-1)
	n.children.nodes[0] = newFirst
	n.children.infos[0] = newFirst.textInfo()
	if res == nil {
		return n, nil
	}
	right := n.children.insertSplit(1, res.textInfo(), res)
	if right == nil {
		return n, nil
	}
	return n, newInternalNode(right)
}
