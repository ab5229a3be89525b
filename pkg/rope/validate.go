package rope

import "fmt"

// Validate walks the whole tree and checks every structural invariant:
// uniform depth, leaf and children fill bounds, scalar-boundary and
// non-CRLF-splitting chunk seams, and agreement between each stored
// TextInfo and a fresh scan of its subtree. It returns a descriptive
// error naming the first violation found, or nil.
//
// Validate is O(n) and intended for tests and debugging; a violation
// means the tree is corrupt, so production callers that choose to run it
// should treat a non-nil result as fatal.
func (r *Rope) Validate() error {
	v := &validator{}
	if err := v.walk(r.root, true); err != nil {
		return err
	}
	return nil
}

// MustValidate panics on the first invariant violation. See Validate.
func (r *Rope) MustValidate() {
	if err := r.Validate(); err != nil {
		panic("rope: internal invariant violation: " + err.Error())
	}
}

type validator struct {
	leafDepth    int // depth at which the first leaf was found
	sawLeaf      bool
	curDepth     int
	prevLastByte byte
	sawPrevLeaf  bool
}

func (v *validator) walk(n *node, isRoot bool) error {
	if n.isLeaf {
		if v.sawLeaf && v.curDepth != v.leafDepth {
			return fmt.Errorf("leaf at depth %d, expected %d", v.curDepth, v.leafDepth)
		}
		v.leafDepth = v.curDepth
		v.sawLeaf = true

		l := n.leaf
		if l.len() > MaxBytes {
			return fmt.Errorf("leaf holds %d bytes, max %d", l.len(), MaxBytes)
		}
		if !isRoot && l.len() < MinBytes {
			return fmt.Errorf("non-root leaf holds %d bytes, min %d", l.len(), MinBytes)
		}
		text := l.text()
		if v.sawPrevLeaf && len(text) > 0 {
			if (text[0] & 0xC0) == 0x80 {
				return fmt.Errorf("leaf boundary splits a scalar")
			}
			if v.prevLastByte == '\r' && text[0] == '\n' {
				return fmt.Errorf("leaf boundary splits a CRLF pair")
			}
		}
		if len(text) > 0 {
			v.prevLastByte = text[len(text)-1]
			v.sawPrevLeaf = true
		}
		return nil
	}

	count := int(n.children.len)
	if count > MaxChildren {
		return fmt.Errorf("internal node holds %d children, max %d", count, MaxChildren)
	}
	if !isRoot && count < MinChildren {
		return fmt.Errorf("non-root internal node holds %d children, min %d", count, MinChildren)
	}
	if isRoot && count < 2 {
		return fmt.Errorf("internal root holds %d children; singular roots must be pulled up", count)
	}
	for i := 0; i < count; i++ {
		child := n.children.nodes[i]
		stored := n.children.infos[i]
		if scanned := scanSubtree(child); scanned != stored {
			return fmt.Errorf("stored info %+v disagrees with scanned %+v at child %d", stored, scanned, i)
		}
		v.curDepth++
		if err := v.walk(child, false); err != nil {
			return err
		}
		v.curDepth--
	}
	return nil
}

// scanSubtree recomputes a subtree's TextInfo from its raw text, ignoring
// the cached values, then corrects for CRLF pairs straddling interior
// leaf boundaries. A well-formed tree never has such a straddle, but the
// correction keeps info checking independent of the seam check so each
// reports its own violation.
func scanSubtree(n *node) TextInfo {
	if n.isLeaf {
		return Scan(n.leaf.text())
	}
	var t TextInfo
	for i := 0; i < int(n.children.len); i++ {
		t = t.Combine(scanSubtree(n.children.nodes[i]))
	}
	return t
}
