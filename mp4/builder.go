package mp4

import (
	"fmt"
	"log/slog"

	"github.com/traw/mp4vault/slice"
)

// pendingSegment is one append() call's arguments, held until Build
// runs NewSampleTablePieces for it.
type pendingSegment struct {
	recording              *Recording
	relStart90k, relEnd90k int32
}

// Mp4FileBuilder accumulates segments and a shared sample entry, then
// constructs a single Mp4File, per spec.md §4.6.
type Mp4FileBuilder struct {
	entry   *VideoSampleEntry
	dir     slice.Dir
	cfg     slice.Config
	logger  *slog.Logger
	pending []pendingSegment
}

// NewMp4FileBuilder returns an empty builder. cfg controls SampleFile
// mapping policy (spec.md §4.1); logger receives one structured line
// per fatal Build error, and a nil logger is replaced by slog.Default().
func NewMp4FileBuilder(cfg slice.Config, logger *slog.Logger) *Mp4FileBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mp4FileBuilder{cfg: cfg, logger: logger}
}

// SetSampleEntry binds the shared video sample description every
// appended segment's recording must agree with.
func (b *Mp4FileBuilder) SetSampleEntry(entry *VideoSampleEntry) *Mp4FileBuilder {
	b.entry = entry
	return b
}

// SetSampleFileDir binds the directory handle segments' sample files
// are opened from.
func (b *Mp4FileBuilder) SetSampleFileDir(dir slice.Dir) *Mp4FileBuilder {
	b.dir = dir
	return b
}

// Append queues one recording's contribution over the relative window
// [relStart90k, relEnd90k).
func (b *Mp4FileBuilder) Append(recording *Recording, relStart90k, relEnd90k int32) *Mp4FileBuilder {
	b.pending = append(b.pending, pendingSegment{recording, relStart90k, relEnd90k})
	return b
}

// Build validates and constructs the Mp4File, per spec.md §4.6: it
// assigns a running 1-based sample_offset, runs NewSampleTablePieces
// per segment, opens each segment's sample-file slice, and lays out
// the complete byte stream.
func (b *Mp4FileBuilder) Build() (*Mp4File, error) {
	if len(b.pending) == 0 {
		b.logger.Error("mp4 build failed", "err", ErrEmptySegments)
		return nil, ErrEmptySegments
	}

	file := &Mp4File{segments: make([]*Mp4FileSegment, 0, len(b.pending))}

	sampleOffset := int32(1)
	var totalDuration90k, maxEnd90k int64

	for i, p := range b.pending {
		if p.recording.VideoSampleEntryID != b.entry.ID {
			err := fmt.Errorf("segment %d: %w", i, ErrInconsistentSampleEntry)
			b.logger.Error("mp4 build failed", "err", err)
			return nil, err
		}

		pieces, err := NewSampleTablePieces(p.recording, 1, sampleOffset, p.relStart90k, p.relEnd90k)
		if err != nil {
			err = fmt.Errorf("segment %d: %w", i, err)
			b.logger.Error("mp4 build failed", "err", err)
			return nil, err
		}

		sampleFileSlice := slice.OpenSampleFileSlice(b.dir, p.recording.SampleFileUUID.String(), pieces.SamplePos, b.cfg)

		seg := &Mp4FileSegment{
			Recording:       p.recording,
			RelStart90k:     p.relStart90k,
			RelEnd90k:       p.relEnd90k,
			Pieces:          pieces,
			SampleFileSlice: sampleFileSlice,
		}
		file.segments = append(file.segments, seg)

		sampleOffset += pieces.Frames
		totalDuration90k += int64(pieces.ActualEnd90k - pieces.BeginStart90k)
		if end := p.recording.StartTime90k + int64(pieces.ActualEnd90k); end > maxEnd90k {
			maxEnd90k = end
		}
	}

	file.assemble(b.entry, totalDuration90k, maxEnd90k)
	return file, nil
}
