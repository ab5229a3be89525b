package rope

// findGoodSplit returns pos if splitting text there is valid (a scalar
// boundary that doesn't separate a CRLF pair); otherwise it returns the
// closer of the preceding/following valid split points, with biasLeft
// choosing which direction wins a tie, falling back to whichever valid
// split exists if only one direction has one.
func findGoodSplit(pos int, text string, biasLeft bool) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(text) {
		return len(text)
	}
	if isGoodSplit(pos, text) {
		return pos
	}

	before, haveBefore := -1, false
	for i := pos - 1; i >= 0; i-- {
		if isGoodSplit(i, text) {
			before, haveBefore = i, true
			break
		}
	}
	after, haveAfter := -1, false
	for i := pos + 1; i <= len(text); i++ {
		if isGoodSplit(i, text) {
			after, haveAfter = i, true
			break
		}
	}

	switch {
	case haveBefore && haveAfter:
		db, da := pos-before, after-pos
		switch {
		case db < da:
			return before
		case da < db:
			return after
		case biasLeft:
			return before
		default:
			return after
		}
	case haveBefore:
		return before
	case haveAfter:
		return after
	default:
		return 0
	}
}

// isGoodSplit reports whether byte index pos is a scalar boundary that
// doesn't fall between a CR and its paired LF.
func isGoodSplit(pos int, text string) bool {
	return isCharBoundary(text, pos) && !isCRLFSplit(text, pos)
}

// fixSeam repairs a CRLF pair straddling the boundary between two adjacent
// leaves by shifting the LF from the start of right into the end of left,
// when left ends in CR and right begins with LF and left has room. This
// is the only place bytes cross a leaf boundary outside of a deliberate
// split/merge, and it never needs to recurse since a single byte move
// can't create a new seam violation elsewhere.
func fixSeam(left, right *leaf) {
	if left.len() == 0 || right.len() == 0 {
		return
	}
	lt := left.text()
	rt := right.text()
	if lt[len(lt)-1] != '\r' || rt[0] != '\n' {
		return
	}
	if left.freeCapacity() >= 1 {
		left.insert(left.len(), "\n")
		right.remove(0, 1)
		return
	}
	// Left leaf is full; shift the CR right instead.
	if right.freeCapacity() >= 1 {
		right.insert(0, "\r")
		left.remove(left.len()-1, left.len())
	}
}
