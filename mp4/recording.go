package mp4

import (
	"github.com/google/uuid"

	"github.com/traw/mp4vault/slice"
)

// Recording is one pre-recorded video segment's metadata, per
// spec.md §3. It is supplied by the external recording database and
// is immutable from this package's point of view.
type Recording struct {
	StartTime90k       int64
	EndTime90k         int64
	SampleFileUUID     uuid.UUID
	SampleFileBytes    int64
	SampleFileSHA1     [20]byte
	VideoSamples       int32
	VideoSyncSamples   int32
	VideoSampleEntryID int32
	VideoIndex         []byte
}

// Duration90k returns the recording's total duration in 90k ticks.
func (r *Recording) Duration90k() int64 { return r.EndTime90k - r.StartTime90k }

// VideoSampleEntry is the shared sample description all segments of
// one Mp4File must agree on, per spec.md §3.
type VideoSampleEntry struct {
	ID     int32
	Width  uint16
	Height uint16
	SHA1   [20]byte
	// Data is the complete, already-encoded single stsd entry payload
	// (e.g. a raw 'avc1' box), copied verbatim into the stsd box.
	Data []byte
}

// Mp4FileSegment is one recording's contribution to an Mp4File's
// sample tables and mdat payload, per spec.md §3.
type Mp4FileSegment struct {
	Recording       *Recording
	RelStart90k     int32
	RelEnd90k       int32
	Pieces          *SampleTablePieces
	SampleFileSlice slice.FileSlice
}

// Duration90k is the segment's actual, GOP-aligned duration — not the
// requested window — per spec.md §10's supplemented diagnostic.
func (s *Mp4FileSegment) Duration90k() int32 {
	return s.Pieces.ActualEnd90k - s.Pieces.BeginStart90k
}
