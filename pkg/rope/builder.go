package rope

// Builder assembles a tree bottom-up from a stream of string chunks. It
// replaces whole-string batching with incremental appends, so large
// inserts and FromReader never have to materialize one giant intermediate
// string before a tree can be built from it.
//
// The builder holds the tree's right spine as an explicit stack:
// stack[0] is the topmost open node and stack[len-1] the deepest, each
// one the current rightmost node of its level, not yet linked to the
// level above. Emitting a leaf touches only the deepest open node, and
// cascades upward only when a node fills and closes, so appending L
// leaves does O(L) total work rather than re-walking the spine from the
// root for every leaf. Build links the remaining open nodes together,
// which is where each level's reserved child slot gets used.
//
// Example usage:
//
//	builder := rope.NewBuilder()
//	builder.Append("Hello")
//	builder.Append(" ")
//	builder.Append("World")
//	r := builder.Build()
type Builder struct {
	stack []*node
	buf   []byte
}

// NewBuilder returns a Builder starting from an empty rope.
func NewBuilder() *Builder {
	return &Builder{stack: []*node{emptyNode()}}
}

// Append adds text to the end of the rope under construction. Chunk
// boundaries chosen internally always land on a scalar boundary and never
// split a CRLF pair, so Build never needs a trailing seam repair.
func (b *Builder) Append(s string) *Builder {
	if s == "" {
		return b
	}
	b.buf = append(b.buf, s...)
	for len(b.buf) > MaxBytes {
		text := string(b.buf)
		splitAt := findGoodSplit(MaxBytes, text, true)
		if splitAt > MaxBytes {
			// The nearest good split lies past a full leaf; take the
			// closest good split below MaxBytes instead.
			splitAt = MaxBytes - 1
			for splitAt > 0 && !isGoodSplit(splitAt, text) {
				splitAt--
			}
		}
		if splitAt <= 0 {
			splitAt = MaxBytes
		}
		b.appendLeaf(string(b.buf[:splitAt]))
		b.buf = append([]byte(nil), b.buf[splitAt:]...)
	}
	return b
}

// AppendRune appends a single rune to the end.
func (b *Builder) AppendRune(r rune) *Builder { return b.Append(string(r)) }

func (b *Builder) appendLeaf(s string) {
	if len(s) == 0 {
		return
	}
	b.appendLeafNode(newLeafNode(newLeafFromString(s)))
}

// appendLeafNode pushes a finished leaf onto the right spine: pair it
// with a lone bottom leaf, append it to the deepest open internal node,
// or, when that node is full, close the node's left half into the level
// above and keep building into the right half, opening a new root level
// if the cascade walks off the top of the stack.
func (b *Builder) appendLeafNode(leaf *node) {
	last := b.stack[len(b.stack)-1]
	if last.isLeaf {
		if last.leaf.len() == 0 {
			b.stack[len(b.stack)-1] = leaf
			return
		}
		c := newChildren()
		c.push(last.textInfo(), last)
		c.push(leaf.textInfo(), leaf)
		b.stack[len(b.stack)-1] = newInternalNode(c)
		return
	}

	left := leaf
	for i := len(b.stack) - 1; ; i-- {
		if i < 0 {
			// Above the root: open a new topmost level whose first child
			// is the node the cascade closed out.
			c := newChildren()
			c.push(left.textInfo(), left)
			b.stack = append([]*node{newInternalNode(c)}, b.stack...)
			return
		}
		// One slot stays reserved at every level so Build can link the
		// open node below into it without another split.
		if int(b.stack[i].children.len) < MaxChildren-1 {
			b.stack[i].children.push(left.textInfo(), left)
			return
		}
		// Full: take the left half as a closed node to push upward, and
		// keep the right half (including the new child) open here.
		full := b.stack[i]
		full.children.push(left.textInfo(), left)
		half := int(full.children.len) / 2
		right := newChildren()
		for j := half; j < int(full.children.len); j++ {
			right.push(full.children.infos[j], full.children.nodes[j])
		}
		for int(full.children.len) > half {
			full.children.pop()
		}
		b.stack[i] = newInternalNode(right)
		left = full
	}
}

// Length reports the byte length of the text accumulated so far.
func (b *Builder) Length() uint64 {
	total := uint64(len(b.buf))
	for _, n := range b.stack {
		total += n.textInfo().Bytes
	}
	return total
}

// Build flushes any remaining buffered text, zips the open spine nodes
// together into one tree, repairs the right edge (the only place
// undersized nodes can remain), and returns the finished Rope. The
// builder is reset afterward, ready to start a fresh rope.
func (b *Builder) Build() *Rope {
	if len(b.buf) > 0 {
		b.appendLeaf(string(b.buf))
		b.buf = nil
	}
	for len(b.stack) > 1 {
		n := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		parent := b.stack[len(b.stack)-1]
		parent.children.push(n.textInfo(), n)
	}
	root := b.stack[0]
	zipFixRight(root)
	root = pullUpSingularNodes(root)
	root.retain()
	b.Reset()
	return &Rope{root: root}
}

// Reset clears the builder back to an empty rope.
func (b *Builder) Reset() *Builder {
	b.stack = append(b.stack[:0], emptyNode())
	b.buf = nil
	return b
}

// Write implements io.Writer, so a Builder can be the destination of
// io.Copy or fmt.Fprint.
func (b *Builder) Write(p []byte) (int, error) {
	b.Append(string(p))
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Builder) WriteString(s string) (int, error) {
	b.Append(s)
	return len(s), nil
}

// BuilderPool maintains a pool of builders for reuse, cutting allocation
// overhead when many ropes are built in a loop (e.g. one per parsed
// document during a batch import).
type BuilderPool struct {
	builders chan *Builder
}

// NewBuilderPool creates a pool holding up to size idle builders.
func NewBuilderPool(size int) *BuilderPool {
	return &BuilderPool{builders: make(chan *Builder, size)}
}

// Get returns a builder from the pool, or a fresh one if the pool is empty.
func (p *BuilderPool) Get() *Builder {
	select {
	case b := <-p.builders:
		return b.Reset()
	default:
		return NewBuilder()
	}
}

// Put returns a builder to the pool for reuse, discarding it if the pool is
// already full.
func (p *BuilderPool) Put(b *Builder) {
	select {
	case p.builders <- b.Reset():
	default:
	}
}
