package rope

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
)

// Grapheme represents a user-perceived character (grapheme cluster). A
// grapheme can be a single ASCII character, a single code point, or
// several code points combined (accents, emoji sequences, and so on).
type Grapheme struct {
	Text     string // grapheme cluster text
	StartPos uint64 // scalar-value offset where this grapheme starts
	byteLen  int
	CharLen  int // length in scalar values
}

// GraphemeIterator iterates over grapheme clusters in a rope, using
// uax29's Unicode text segmentation over the rope's materialized content.
type GraphemeIterator struct {
	graphemes []Grapheme
	index     int
	exhausted bool
}

// Graphemes returns an iterator over grapheme clusters in the rope.
func (r *Rope) Graphemes() *GraphemeIterator {
	return r.FullSlice().Graphemes()
}

// Graphemes returns an iterator over grapheme clusters in the slice.
func (s RopeSlice) Graphemes() *GraphemeIterator {
	if s.LenBytes() == 0 {
		return &GraphemeIterator{exhausted: true}
	}

	content := s.String()
	segments := graphemes.SegmentAllString(content)

	clusters := make([]Grapheme, len(segments))
	var charPos uint64
	for i, seg := range segments {
		charLen := utf8.RuneCountInString(seg)
		clusters[i] = Grapheme{
			Text:     seg,
			StartPos: charPos,
			byteLen:  len(seg),
			CharLen:  charLen,
		}
		charPos += uint64(charLen)
	}

	return &GraphemeIterator{graphemes: clusters, index: -1, exhausted: len(clusters) == 0}
}

// Next advances to the next grapheme cluster and reports whether one was
// available.
func (it *GraphemeIterator) Next() bool {
	if it.exhausted {
		return false
	}
	it.index++
	if it.index >= len(it.graphemes) {
		it.exhausted = true
		return false
	}
	return true
}

// Current returns the current grapheme cluster.
func (it *GraphemeIterator) Current() Grapheme {
	if it.exhausted || it.index < 0 || it.index >= len(it.graphemes) {
		return Grapheme{}
	}
	return it.graphemes[it.index]
}

// Collect gathers all remaining graphemes into a slice.
func (it *GraphemeIterator) Collect() []Grapheme {
	var out []Grapheme
	for it.Next() {
		out = append(out, it.Current())
	}
	return out
}

// LenGraphemes returns the total number of grapheme clusters in the rope.
func (r *Rope) LenGraphemes() int {
	count := 0
	it := r.Graphemes()
	for it.Next() {
		count++
	}
	return count
}

// GraphemeAt returns the grapheme at the given scalar-cluster index.
func (r *Rope) GraphemeAt(idx int) (Grapheme, error) {
	it := r.Graphemes()
	i := 0
	for it.Next() {
		if i == idx {
			return it.Current(), nil
		}
		i++
	}
	return Grapheme{}, errOutOfBounds("grapheme", uint64(idx), uint64(i))
}

// IsGraphemeBoundary reports whether the given scalar-value offset falls
// on a grapheme cluster boundary.
func (r *Rope) IsGraphemeBoundary(charIdx uint64) bool {
	if charIdx == 0 || charIdx == r.LenChars() {
		return true
	}
	it := r.Graphemes()
	for it.Next() {
		g := it.Current()
		if g.StartPos == charIdx {
			return true
		}
		if g.StartPos > charIdx {
			return false
		}
	}
	return false
}

// String returns the grapheme's text.
func (g Grapheme) String() string { return g.Text }

// Bytes returns the grapheme's text as a byte slice.
func (g Grapheme) Bytes() []byte { return []byte(g.Text) }

// Len returns the grapheme's length in scalar values.
func (g Grapheme) Len() int { return g.CharLen }

// ByteLen returns the grapheme's length in bytes.
func (g Grapheme) ByteLen() int { return g.byteLen }
