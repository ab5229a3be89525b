package rope

import "fmt"

// Error is the common interface satisfied by every error this package
// returns from a fallible public operation. Internal invariant failures are
// not represented here -- Validate reports them as a plain error, and
// MustValidate panics on them, since a broken invariant means the tree
// itself is corrupt.
type Error interface {
	error
	ropeError()
}

// OutOfBoundsError reports that an index exceeded the rope's length for the
// metric it was given in (bytes, chars, or lines).
type OutOfBoundsError struct {
	Index  uint64
	Length uint64
	Metric string // "byte", "char", or "line"
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("rope: %s index %d out of bounds (length %d)", e.Metric, e.Index, e.Length)
}
func (*OutOfBoundsError) ropeError() {}

// NotCharBoundaryError reports that an edit endpoint fell inside a
// multi-byte UTF-8 scalar instead of on a scalar boundary.
type NotCharBoundaryError struct {
	ByteIndex uint64
}

func (e *NotCharBoundaryError) Error() string {
	return fmt.Sprintf("rope: byte index %d is not a char boundary", e.ByteIndex)
}
func (*NotCharBoundaryError) ropeError() {}

// InvalidDataError reports that a reader produced a byte stream that isn't
// complete, valid UTF-8.
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string { return "rope: invalid UTF-8 data: " + e.Reason }
func (*InvalidDataError) ropeError()      {}

// IOError wraps a transport failure encountered while reading from an
// io.Reader passed to FromReader.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "rope: read error: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }
func (*IOError) ropeError()      {}

// errOutOfBounds is a small constructor matching the rest of the package's
// naming convention for error builders.
func errOutOfBounds(metric string, index, length uint64) error {
	return &OutOfBoundsError{Index: index, Length: length, Metric: metric}
}

func errNotCharBoundary(byteIndex uint64) error {
	return &NotCharBoundaryError{ByteIndex: byteIndex}
}
