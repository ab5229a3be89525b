package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== Construction & Closure ==========

func TestSlice_FullRange(t *testing.T) {
	r := New("Hello World")
	s, err := r.Slice(0, r.LenBytes())
	require.NoError(t, err)
	assert.Equal(t, "Hello World", s.String())
}

func TestSlice_Partial(t *testing.T) {
	r := New("Hello World")
	s, err := r.Slice(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "World", s.String())
	assert.Equal(t, uint64(5), s.LenBytes())
}

func TestSlice_Empty(t *testing.T) {
	r := New("Hello World")
	s, err := r.Slice(5, 5)
	require.NoError(t, err)
	assert.Equal(t, "", s.String())
	assert.Equal(t, uint64(0), s.LenBytes())
	assert.Equal(t, uint64(1), s.LenLines(LF))
}

func TestSlice_RejectsMidScalarBoundary(t *testing.T) {
	r := New("a日b")
	_, err := r.Slice(0, 2)
	var boundaryErr *NotCharBoundaryError
	require.ErrorAs(t, err, &boundaryErr)
}

func TestSlice_RejectsOutOfBounds(t *testing.T) {
	r := New("abc")
	_, err := r.Slice(0, 4)
	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
}

// TestSlice_ClosureProperty: slicing agrees with string slicing for every
// sampled range.
func TestSlice_ClosureProperty(t *testing.T) {
	text := strings.Repeat("closure property holds\n", 800)
	r := New(text)
	n := uint64(len(text))
	for a := uint64(0); a <= n; a += 997 {
		for b := a; b <= n; b += 2377 {
			s, err := r.Slice(a, b)
			require.NoError(t, err)
			assert.Equal(t, text[a:b], s.String(), "slice(%d..%d)", a, b)
		}
	}
}

func TestSlice_OfSliceComposes(t *testing.T) {
	text := strings.Repeat("0123456789", 500)
	r := New(text)
	outer, err := r.Slice(1000, 4000)
	require.NoError(t, err)
	inner, err := outer.Slice(500, 1500)
	require.NoError(t, err)
	assert.Equal(t, text[1500:2500], inner.String())

	// Re-slicing keeps the same root; metrics stay consistent.
	assert.Equal(t, uint64(1000), inner.LenBytes())
	assert.Equal(t, uint64(1000), inner.LenChars())
}

// ========== Metrics ==========

func TestSlice_LenChars(t *testing.T) {
	r := New("aé日🌍z")
	s, err := r.Slice(1, 10) // é日🌍
	require.NoError(t, err)
	assert.Equal(t, uint64(9), s.LenBytes())
	assert.Equal(t, uint64(3), s.LenChars())
}

func TestSlice_LenLines(t *testing.T) {
	r := New("a\nb\nc\nd")
	s, err := r.Slice(2, 6) // "b\nc\n"
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.LenLines(LF), "trailing terminator opens one more line")

	s, err = r.Slice(2, 5) // "b\nc"
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.LenLines(LF))
}

func TestSlice_CRLFStraddleAtStart(t *testing.T) {
	r := New("a\r\nb")
	s, err := r.Slice(2, 4) // "\nb": the LF is a lone break inside the slice
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.LenLines(LFCR))

	b, err := s.LineToByte(1, LFCR)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b)
}

func TestSlice_CRLFStraddleAtEnd(t *testing.T) {
	r := New("x\r\ny")
	s, err := r.Slice(0, 2) // "x\r": the CR is a lone break inside the slice
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.LenLines(LFCR))

	b, err := s.LineToByte(1, LFCR)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), b, "line 1 is the empty line after the trailing CR")
}

// ========== Conversions on Slices ==========

func TestSlice_ByteCharConversions(t *testing.T) {
	r := New("xxaé日zyy")
	s, err := r.Slice(2, 8) // "aé日"
	require.NoError(t, err)
	c, err := s.ByteToChar(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c)
	b, err := s.CharToByte(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), b)
	assert.Equal(t, uint64(3), s.LenChars())
}

func TestSlice_LineConversions(t *testing.T) {
	text := strings.Repeat("line one\nline two\nline three\n", 700)
	r := New(text)
	s, err := r.Slice(9, uint64(len(text))-10)
	require.NoError(t, err)

	want := text[9 : len(text)-10]
	wantLines := uint64(strings.Count(want, "\n")) + 1
	assert.Equal(t, wantLines, s.LenLines(LF))

	for _, line := range []uint64{0, 1, 2, 100, wantLines - 1} {
		b, err := s.LineToByte(line, LF)
		require.NoError(t, err)
		// Recompute from the materialized text.
		wantByte := uint64(0)
		if line > 0 {
			idx := 0
			for k := uint64(0); k < line; k++ {
				next := strings.IndexByte(want[idx:], '\n')
				if next < 0 {
					idx = len(want)
					break
				}
				idx += next + 1
			}
			wantByte = uint64(idx)
		}
		assert.Equal(t, wantByte, b, "line %d", line)

		back, err := s.ByteToLine(b, LF)
		require.NoError(t, err)
		if b < s.LenBytes() {
			assert.Equal(t, line, back, "line %d", line)
		}
	}
}

func TestSlice_CharLineConversions(t *testing.T) {
	r := New("αβ\nγδ\nε")
	s := r.FullSlice()
	l, err := s.CharToLine(3, LF) // γ
	require.NoError(t, err)
	assert.Equal(t, uint64(1), l)
	c, err := s.LineToChar(1, LF)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c)
}

// ========== Point Access ==========

func TestSlice_ByteAtCharAt(t *testing.T) {
	r := New("hello world")
	s, err := r.Slice(6, 11)
	require.NoError(t, err)
	b, err := s.ByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte('w'), b)
	ch, err := s.CharAt(4)
	require.NoError(t, err)
	assert.Equal(t, 'd', ch)
	_, err = s.ByteAt(5)
	require.Error(t, err)
}

func TestSlice_Line(t *testing.T) {
	r := New("one\ntwo\nthree")
	s := r.FullSlice()
	for i, want := range []string{"one\n", "two\n", "three"} {
		line, err := s.Line(uint64(i), LF)
		require.NoError(t, err)
		assert.Equal(t, want, line.String())
	}
	_, err := s.Line(3, LF)
	require.Error(t, err)
}

func TestSlice_LineOnRope(t *testing.T) {
	r := New("a\nb\n")
	line, err := r.Line(2, LF)
	require.NoError(t, err)
	assert.Equal(t, "", line.String(), "final empty line after trailing terminator")
}

func TestSlice_ChunkAtByte(t *testing.T) {
	r := New("hello world")
	s, err := r.Slice(3, 9)
	require.NoError(t, err)
	chunk, start, err := s.ChunkAtByte(2)
	require.NoError(t, err)
	assert.Equal(t, "lo wor", chunk)
	assert.Equal(t, uint64(0), start)
}

// ========== String-Backed Slices ==========

func TestStrSlice_FullAPI(t *testing.T) {
	s := StrSlice("one\ntwo\nthree")
	assert.Equal(t, uint64(13), s.LenBytes())
	assert.Equal(t, uint64(13), s.LenChars())
	assert.Equal(t, uint64(3), s.LenLines(LF))

	b, err := s.LineToByte(1, LF)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), b)

	line, err := s.Line(1, LF)
	require.NoError(t, err)
	assert.Equal(t, "two\n", line.String())

	sub, err := s.Slice(4, 7)
	require.NoError(t, err)
	assert.Equal(t, "two", sub.String())

	ch, err := s.CharAt(4)
	require.NoError(t, err)
	assert.Equal(t, 't', ch)
}

func TestStrSlice_AgreesWithTreeSlice(t *testing.T) {
	text := "mixed 日本語 content\nwith α lines\n"
	str := StrSlice(text)
	tree := New(text).FullSlice()

	assert.Equal(t, tree.LenBytes(), str.LenBytes())
	assert.Equal(t, tree.LenChars(), str.LenChars())
	for _, kind := range []LineBreakKind{LF, LFCR, Unicode} {
		assert.Equal(t, tree.LenLines(kind), str.LenLines(kind))
	}
	assert.True(t, str.Equal(tree))
}

// ========== Equality ==========

func TestSlice_EqualAcrossChunkings(t *testing.T) {
	text := strings.Repeat("equality ignores chunking ", 300)
	a := buildChunkRope([]string{text}).FullSlice()

	var parts []string
	for i := 0; i < len(text); i += 97 {
		end := i + 97
		if end > len(text) {
			end = len(text)
		}
		parts = append(parts, text[i:end])
	}
	b := buildChunkRope(parts).FullSlice()

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.EqualString(text))
}

func TestSlice_SurvivesSourceEdits(t *testing.T) {
	r := New(strings.Repeat("stable view\n", 1000))
	s, err := r.Slice(12, 24)
	require.NoError(t, err)
	_, err = r.Insert(0, "edits go to a new rope ")
	require.NoError(t, err)
	assert.Equal(t, "stable view\n", s.String(), "the slice keeps observing the old tree")
}
