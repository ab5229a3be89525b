package rope

import "sync"

// ========== Buffer Pools ==========

// bufferPool holds reusable byte buffers for FromReader's staging
// buffer. Tree nodes
// themselves are never pooled: a node's lifetime is governed by its
// refcount and the garbage collector, and handing a still-referenced node
// back to a pool is exactly the kind of aliasing the copy-on-write
// discipline exists to prevent.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, MaxBytes)
		return &b
	},
}

// acquireBuffer returns an empty buffer with at least MaxBytes capacity.
func acquireBuffer() *[]byte {
	b := bufferPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// releaseBuffer returns a buffer to the pool. Buffers that grew far past
// the leaf size are discarded so the pool doesn't pin large allocations.
func releaseBuffer(b *[]byte) {
	if cap(*b) <= 64*MaxBytes {
		bufferPool.Put(b)
	}
}
