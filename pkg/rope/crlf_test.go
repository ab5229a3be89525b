package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== findGoodSplit ==========

func TestFindGoodSplit_AlreadyValid(t *testing.T) {
	assert.Equal(t, 2, findGoodSplit(2, "abcd", true))
	assert.Equal(t, 0, findGoodSplit(0, "abcd", true))
	assert.Equal(t, 4, findGoodSplit(4, "abcd", true))
}

func TestFindGoodSplit_MidScalar(t *testing.T) {
	s := "a日b" // 日 spans bytes [1,4)
	assert.Equal(t, 1, findGoodSplit(2, s, true), "closer valid split is before")
	assert.Equal(t, 4, findGoodSplit(3, s, true), "closer valid split is after")
}

func TestFindGoodSplit_MidCRLF(t *testing.T) {
	s := "ab\r\ncd"
	// Position 3 is between CR and LF; both neighbors are valid and
	// equidistant, so the bias decides.
	assert.Equal(t, 2, findGoodSplit(3, s, true))
	assert.Equal(t, 4, findGoodSplit(3, s, false))
}

func TestFindGoodSplit_TieAtTextEnds(t *testing.T) {
	// Position 1 splits the pair; the text's two ends are equidistant
	// valid splits, so the bias decides.
	s := "\r\n"
	assert.Equal(t, 0, findGoodSplit(1, s, true))
	assert.Equal(t, 2, findGoodSplit(1, s, false))
}

// ========== Seam Repair ==========

func TestFixSeam_ShiftsLFLeft(t *testing.T) {
	left := newLeafFromString("ab\r")
	right := newLeafFromString("\ncd")
	fixSeam(left, right)
	assert.Equal(t, "ab\r\n", left.text())
	assert.Equal(t, "cd", right.text())
}

func TestFixSeam_ShiftsCRRightWhenLeftFull(t *testing.T) {
	left := newLeafFromString(strings.Repeat("x", MaxBytes-1) + "\r")
	right := newLeafFromString("\ncd")
	fixSeam(left, right)
	lt := left.text()
	rt := right.text()
	assert.NotEqual(t, byte('\r'), lt[len(lt)-1])
	assert.Equal(t, "\r\ncd", rt)
}

func TestFixSeam_NoOpWithoutPair(t *testing.T) {
	left := newLeafFromString("ab")
	right := newLeafFromString("cd")
	fixSeam(left, right)
	assert.Equal(t, "ab", left.text())
	assert.Equal(t, "cd", right.text())
}

// ========== CRLF pairing under edits ==========

func TestCRLF_InsertBetweenPairAndRemoveAgain(t *testing.T) {
	r := New("a\r\nb")
	require.Equal(t, uint64(2), r.LenLines(LFCR))

	b, err := r.LineToByte(1, LFCR)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), b, "line 1 starts after the full CRLF pair")

	r2, err := r.Insert(2, "x")
	require.NoError(t, err)
	assert.Equal(t, "a\rx\nb", r2.String())
	assert.Equal(t, uint64(3), r2.LenLines(LFCR), "CR and LF no longer paired")

	r3, err := r2.Remove(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb", r3.String())
	assert.Equal(t, uint64(2), r3.LenLines(LFCR))
	require.NoError(t, r3.Validate())
}

// TestCRLF_AtomicityAcrossEdits builds a CRLF-heavy rope large enough to
// span many leaves and checks that no edit sequence ever leaves a pair
// split across a leaf boundary.
func TestCRLF_AtomicityAcrossEdits(t *testing.T) {
	line := strings.Repeat("w", 61) + "\r\n"
	r := New(strings.Repeat(line, 300))
	require.NoError(t, r.Validate())
	assert.Equal(t, uint64(301), r.LenLines(LFCR))

	for i := 0; i < 50; i++ {
		at, err := r.LineToByte(uint64(i*5), LFCR)
		require.NoError(t, err)
		r, err = r.Insert(at, "\r\n")
		require.NoError(t, err)
	}
	require.NoError(t, r.Validate())
	assert.Equal(t, uint64(351), r.LenLines(LFCR))

	for i := 0; i < 20; i++ {
		end, err := r.LineToByte(1, LFCR)
		require.NoError(t, err)
		r, err = r.Remove(0, end)
		require.NoError(t, err)
	}
	require.NoError(t, r.Validate())
	assert.Equal(t, uint64(331), r.LenLines(LFCR))
}

func TestCRLF_SplitOffNeverSplitsPair(t *testing.T) {
	r := New(strings.Repeat("ab\r\n", 2000))
	left, right, err := r.SplitOff(4000)
	require.NoError(t, err)
	require.NoError(t, left.Validate())
	require.NoError(t, right.Validate())
	assert.Equal(t, r.String()[:4000], left.String())
	assert.Equal(t, r.String()[4000:], right.String())
}

func TestCRLF_AppendRejoinsPair(t *testing.T) {
	left := New(strings.Repeat("x", 600) + "\r")
	right := New("\n" + strings.Repeat("y", 600))
	joined, err := left.Append(right)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), joined.LenLines(LFCR), "the rejoined CRLF counts once")
	require.NoError(t, joined.Validate())
}
