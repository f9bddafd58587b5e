package slice

import (
	"errors"
	"io"
)

// ByteRange is a half-open byte interval [Begin, End).
type ByteRange struct {
	Begin int64
	End   int64
}

// Len returns the width of the range.
func (r ByteRange) Len() int64 { return r.End - r.Begin }

// ErrSampleFileIO is returned when a SampleFile slice fails to open or
// read its backing file. A failed mmap is not reported: the slice falls
// back to ReadAt.
var ErrSampleFileIO = errors.New("slice: sample file i/o error")

// ErrFillerWrongSize is returned when a Filler's generator produces a
// byte count that disagrees with the size it declared up front. This
// is a programmer error in the generator, not a runtime condition
// callers are expected to recover from.
var ErrFillerWrongSize = errors.New("slice: filler produced wrong size")

// FillerBackendError wraps an error raised by a Filler's generator
// closure, preserving the original message per spec.
type FillerBackendError struct {
	Err error
}

func (e *FillerBackendError) Error() string { return "slice: filler backend error: " + e.Err.Error() }
func (e *FillerBackendError) Unwrap() error { return e.Err }

// FileSlice is a polymorphic producer over a contiguous logical byte
// range with a size known before any byte is read.
type FileSlice interface {
	// Size returns the slice's fixed length. Idempotent, called
	// often, must be cheap.
	Size() int64

	// AddRange appends bytes r (a sub-range of [0, Size())) to out,
	// returning the number of bytes actually written. A short write
	// is valid and the caller may retry or fail.
	AddRange(r ByteRange, out io.Writer) (int64, error)
}

// Static is a FileSlice over an immutable, already-in-memory byte
// literal (e.g. a compile-time box template).
type Static struct {
	Data []byte
}

func (s Static) Size() int64 { return int64(len(s.Data)) }

func (s Static) AddRange(r ByteRange, out io.Writer) (int64, error) {
	n, err := out.Write(s.Data[r.Begin:r.End])
	return int64(n), err
}

// OwnedCopy is a FileSlice over a heap buffer the slice owns, such as
// a serialized box-header struct. Unlike Static, the backing slice may
// be mutated in place after construction (e.g. by ScopedBox patching a
// container's size field) as long as the mutation happens before the
// slice is ever read.
type OwnedCopy struct {
	Data []byte
}

func (c *OwnedCopy) Size() int64 { return int64(len(c.Data)) }

func (c *OwnedCopy) AddRange(r ByteRange, out io.Writer) (int64, error) {
	n, err := out.Write(c.Data[r.Begin:r.End])
	return int64(n), err
}
