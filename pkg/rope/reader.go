package rope

import (
	"io"
	"unicode/utf8"
)

// FromReader reads the reader to exhaustion and builds a rope from its
// content. Reads go through a fixed staging buffer: after each read the
// longest valid UTF-8 prefix of the staged bytes is handed to the
// Builder, and any incomplete trailing scalar is kept staged for the next
// read. Input that is not valid UTF-8 -- an invalid byte sequence, or a
// scalar still incomplete at end of stream -- yields an
// *InvalidDataError; transport failures are wrapped in *IOError.
//
// Example:
//
//	file, _ := os.Open("large_file.txt")
//	defer file.Close()
//	r, err := rope.FromReader(file)
func FromReader(reader io.Reader) (*Rope, error) {
	b := NewBuilder()
	staging := acquireBuffer()
	defer releaseBuffer(staging)
	buf := make([]byte, 4096)

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			*staging = append(*staging, buf[:n]...)
			valid, ferr := consumeValidPrefix(b, staging)
			if ferr != nil {
				return nil, ferr
			}
			// A tail that can't grow into a valid scalar anymore is
			// malformed even before end of stream.
			if !valid {
				return nil, &InvalidDataError{Reason: "invalid byte sequence"}
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &IOError{Err: err}
		}
	}
	if len(*staging) > 0 {
		return nil, &InvalidDataError{Reason: "stream ends mid-scalar"}
	}
	return b.Build(), nil
}

// consumeValidPrefix appends the longest valid UTF-8 prefix of staging to
// the builder, leaving at most one incomplete trailing scalar staged. It
// reports false when the staged bytes contain a sequence that no further
// input could complete.
func consumeValidPrefix(b *Builder, staging *[]byte) (bool, error) {
	data := *staging
	cut := len(data) - incompleteTailLen(data)
	if !utf8.Valid(data[:cut]) {
		return false, nil
	}
	if cut > 0 {
		b.Append(string(data[:cut]))
		rest := copy(data, data[cut:])
		*staging = data[:rest]
	}
	return true, nil
}

// incompleteTailLen returns the length of a trailing incomplete (but so
// far well-formed) scalar at the end of data, or 0 when data ends on a
// complete scalar or with bytes no suffix could repair.
func incompleteTailLen(data []byte) int {
	end := len(data)
	for back := 1; back < utf8.UTFMax && back <= end; back++ {
		lead := data[end-back]
		if !utf8.RuneStart(lead) {
			continue
		}
		if want := runeLen(lead); want > back {
			return back
		}
		return 0
	}
	return 0
}

// runeLen returns the encoded length a UTF-8 sequence starting with lead
// claims, or 0 for an invalid lead byte.
func runeLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// WriteTo writes the rope's content to w one chunk at a time, without
// materializing the whole document. It implements io.WriterTo.
func (r *Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Chunks()
	for it.Next() {
		n, err := io.WriteString(w, it.Current())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Reader returns an io.Reader over the rope's content, so a Rope can be
// handed to anything that consumes a byte stream.
func (r *Rope) Reader() io.Reader {
	cur := r.ChunkCursor()
	return &ropeReader{cursor: cur, chunk: cur.Chunk()}
}

type ropeReader struct {
	cursor *ChunkCursor
	chunk  string
	done   bool
}

func (rr *ropeReader) Read(p []byte) (int, error) {
	if rr.done {
		return 0, io.EOF
	}
	total := 0
	for total < len(p) {
		if rr.chunk == "" {
			next, ok := rr.cursor.Next()
			if !ok {
				rr.done = true
				if total == 0 {
					return 0, io.EOF
				}
				return total, nil
			}
			rr.chunk = next
			continue
		}
		n := copy(p[total:], rr.chunk)
		rr.chunk = rr.chunk[n:]
		total += n
	}
	return total, nil
}
