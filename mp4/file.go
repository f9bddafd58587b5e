package mp4

import (
	"crypto/sha1"
	"fmt"
	"io"
	"time"

	"github.com/traw/mp4vault/slice"
)

// mp4Epoch1904Offset converts a Unix timestamp to seconds since
// 1904-01-01 UTC, the epoch ISO/IEC 14496-12 box timestamps use.
const mp4Epoch1904Offset = 24107 * 86400

// VirtualFile is the interface this package exposes upward to an
// HTTP range-serving layer, per spec.md §6. Mp4File is its only
// implementation.
type VirtualFile interface {
	Size() int64
	ETag() string
	LastModified() time.Time
	MimeType() string
	AddRange(r slice.ByteRange, out io.Writer) (int64, error)
}

// Mp4File is the top-level assembler: given a sample entry and
// ordered segments, it owns the composed FileSlices, the moov
// metadata tree's header storage, and every segment's sample-file
// slice, per spec.md §3/§4.5.
type Mp4File struct {
	segments []*Mp4FileSegment
	slices   slice.FileSlices

	etag                 string
	lastModified         time.Time
	initialSampleBytePos int64
}

var _ VirtualFile = (*Mp4File)(nil)

func (f *Mp4File) Size() int64                 { return f.slices.Size() }
func (f *Mp4File) ETag() string                { return f.etag }
func (f *Mp4File) LastModified() time.Time     { return f.lastModified }
func (f *Mp4File) MimeType() string            { return "video/mp4" }
func (f *Mp4File) InitialSampleBytePos() int64 { return f.initialSampleBytePos }

// AddRange delegates to the composed FileSlices; it is reentrant and
// safe to call concurrently, per spec.md §4.5/§5 — nothing mutates
// after Build returns.
func (f *Mp4File) AddRange(r slice.ByteRange, out io.Writer) (int64, error) {
	return f.slices.AddRange(r, out)
}

// Close releases every segment's sample-file mapping. The sample-file
// directory handle itself is borrowed, not owned, per spec.md §5, and
// is never closed here.
func (f *Mp4File) Close() error {
	var first error
	for _, seg := range f.segments {
		if closer, ok := seg.SampleFileSlice.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

// assemble lays out the complete byte stream — ftyp, moov, mdat — into
// f.slices, per the layout order of spec.md §4.5. entry is the shared
// sample description; totalDuration90k, maxEnd90k are precomputed by
// the builder.
func (f *Mp4File) assemble(entry *VideoSampleEntry, totalDuration90k int64, maxEnd90k int64) {
	var totalFrames, totalKeyFrames int32
	for _, seg := range f.segments {
		totalFrames += seg.Pieces.Frames
		totalKeyFrames += seg.Pieces.KeyFrames
	}

	lastModifiedSec := maxEnd90k / 90000
	creationTs := uint32(lastModifiedSec + mp4Epoch1904Offset)
	f.lastModified = time.Unix(lastModifiedSec, 0).UTC()

	moovSz := moovSize(entry, len(f.segments), totalFrames, totalKeyFrames)
	f.initialSampleBytePos = int64(len(ftypBytes)) + moovSz + 16 // mdat large-size header

	appendStatic(&f.slices, ftypBytes)
	appendMoov(&f.slices, uint32(totalDuration90k), creationTs, entry, f.segments, f.initialSampleBytePos, totalFrames, totalKeyFrames)

	mdat := openLargeBox(&f.slices, "mdat")
	for _, seg := range f.segments {
		f.slices.Append(seg.SampleFileSlice)
	}
	mdat.Close()

	f.etag = computeETag(f.segments)
}

// moovSize computes the complete 'moov' tree's byte length arithmetically,
// entirely from already-known counts (frame/key-frame totals, segment
// count, sample entry length) — mirroring the teacher library's own
// Size()-before-Encode() convention. This is required, not just
// convenient: co64's running offsets (laid out inside moov) must be
// seeded with the byte position where mdat's payload begins, which in
// turn depends on moov's total size — a box can't learn its own
// position from the ScopedBox pattern alone when something it
// contains needs that position before the box has been laid out.
// Every size computed here is later reproduced byte-for-byte by the
// ScopedBox Close() calls in appendMoov, since nothing it depends on
// changes between the two passes.
func moovSize(entry *VideoSampleEntry, numSegments int, totalFrames, totalKeyFrames int32) int64 {
	const mvhdSize = 12 + 96
	const tkhdSize = 12 + 80
	const mdhdSize = 12 + 20

	stsdSize := int64(12 + 4 + len(entry.Data))
	sttsSize := int64(12+4) + 8*int64(totalFrames)
	stscSize := int64(12+4) + 12*int64(numSegments)
	stszSize := int64(12+8) + 4*int64(totalFrames)
	co64Size := int64(12+4) + 8*int64(numSegments)
	stssSize := int64(12+4) + 4*int64(totalKeyFrames)

	stblSize := 8 + stsdSize + sttsSize + stscSize + stszSize + co64Size + stssSize
	minfSize := int64(8+len(vmhdDinfBytes)) + stblSize
	mdiaSize := int64(8+mdhdSize+len(hdlrBytes)) + minfSize
	trakSize := int64(8+tkhdSize) + mdiaSize
	return int64(8+mvhdSize) + trakSize
}

// computeETag builds the strong validator of spec.md §4.5: kFormatVersion
// followed by, for each segment, sample_pos.begin, sample_pos.end, and
// the recording's sample-file SHA-1, all fed to one running SHA-1
// digest.
const kFormatVersion = 0x00

func computeETag(segments []*Mp4FileSegment) string {
	h := sha1.New()
	h.Write([]byte{kFormatVersion})
	for _, seg := range segments {
		var buf [16]byte
		putUint64(buf[0:8], uint64(seg.Pieces.SamplePos.Begin))
		putUint64(buf[8:16], uint64(seg.Pieces.SamplePos.End))
		h.Write(buf[:])
		h.Write(seg.Recording.SampleFileSHA1[:])
	}
	return fmt.Sprintf("%q", fmt.Sprintf("%x", h.Sum(nil)))
}
