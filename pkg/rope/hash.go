package rope

import "hash/fnv"

// Hash64 returns a 64-bit FNV-1a hash of the rope's content. Because the
// hasher is fed one leaf chunk at a time in order, with no chunk-boundary
// sentinel, the result depends only on the content's bytes, never on how
// those bytes happen to be divided into leaves -- two ropes with
// identical content hash identically regardless of edit history or
// chunking.
func (r *Rope) Hash64() uint64 {
	return r.FullSlice().Hash64()
}

// Hash64 returns a chunking-stable 64-bit FNV-1a hash of the slice's
// content.
func (s RopeSlice) Hash64() uint64 {
	h := fnv.New64a()
	it := s.Chunks()
	for it.Next() {
		h.Write([]byte(it.Current()))
	}
	return h.Sum64()
}

// WriteContent feeds every byte of the rope's content into h, one chunk
// at a time with no boundary sentinel, so any accumulative hasher sees
// the same byte stream regardless of chunking.
func (r *Rope) WriteContent(h interface{ Write([]byte) (int, error) }) {
	it := r.Chunks()
	for it.Next() {
		h.Write([]byte(it.Current()))
	}
}

// Hash32 returns a 32-bit FNV-1a hash of the rope's content, chunking-stable
// in the same way as Hash64.
func (r *Rope) Hash32() uint32 {
	h := fnv.New32a()
	it := r.Chunks()
	for it.Next() {
		h.Write([]byte(it.Current()))
	}
	return h.Sum32()
}

// HashEquals reports whether r and other have the same content hash. A
// match is not a guarantee of equality (hash collisions are possible) but
// is a cheap pre-check before a full Equal comparison.
func (r *Rope) HashEquals(other *Rope) bool {
	return r.Hash64() == other.Hash64()
}

// LikelyEqual reports whether r and other are likely to have identical
// content: it compares hashes first and only falls back to a full Equal
// when they match.
func (r *Rope) LikelyEqual(other *Rope) bool {
	if r.Hash64() != other.Hash64() {
		return false
	}
	return r.Equal(other)
}
