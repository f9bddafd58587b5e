package mp4

import "errors"

// Error kinds raised by NewSampleTablePieces and Mp4FileBuilder.Build,
// per spec.md §7. Each is a sentinel, checked with errors.Is, except
// IndexDecodeError which carries the underlying decode error and is
// checked with errors.As.
var (
	// ErrNotKeyFramed is returned when a recording's first sample is
	// not a key frame, violating the Recording invariant (spec.md §3)
	// that Build depends on to find GOP boundaries.
	ErrNotKeyFramed = errors.New("mp4: recording's first frame is not a key frame")

	// ErrInconsistentSampleEntry is returned when a segment's
	// recording references a sample entry other than the builder's.
	ErrInconsistentSampleEntry = errors.New("mp4: segment references a different sample entry")

	// ErrEmptySegments is returned when Build is called with no
	// segments appended.
	ErrEmptySegments = errors.New("mp4: build called with no segments")
)

// IndexDecodeError wraps a corrupt-sample-index failure encountered
// while scanning a recording's video index, either during Build or
// later from a Filler closure during add_range.
type IndexDecodeError struct {
	Err error
}

func (e *IndexDecodeError) Error() string { return "mp4: sample index decode error: " + e.Err.Error() }
func (e *IndexDecodeError) Unwrap() error { return e.Err }
