package mp4

import (
	"encoding/binary"

	"github.com/traw/mp4vault/slice"
	"github.com/traw/mp4vault/videoindex"
)

// SampleTablePieces scans one Recording's per-frame index over a
// requested half-open window and computes that segment's contribution
// to the stts/stsz/stss sample tables plus the byte range to include
// from the sample file, per spec.md §4.3.
//
// Each filler closure below re-decodes the video index from scratch
// rather than sharing a live videoindex.Iterator: iterators are
// forward-only and stateful, and the three fillers of one segment —
// along with fillers of every other segment in the same Mp4File — can
// be materialized concurrently (spec.md §5), so no single Iterator
// instance is safe to hand to more than one of them. Re-decoding is
// cheap relative to the work it's amortizing: sync.Once ensures it
// happens at most once per filler, no matter how many readers race to
// trigger it.
type SampleTablePieces struct {
	BeginStart90k    int32
	SamplePos        slice.ByteRange
	Frames           int32
	KeyFrames        int32
	ActualEnd90k     int32
	DesiredEnd90k    int32
	SampleOffset     int32
	SampleEntryIndex int32

	recording *Recording

	SttsFiller *slice.Filler
	StssFiller *slice.Filler
	StszFiller *slice.Filler
}

// NewSampleTablePieces runs the Init algorithm of spec.md §4.3 for one
// segment: recording, relative to the recording's own start, over the
// window [startRel, endRel). sampleEntryIndex and sampleOffset are
// supplied by Mp4FileBuilder.Build.
func NewSampleTablePieces(rec *Recording, sampleEntryIndex, sampleOffset int32, startRel, endRel int32) (*SampleTablePieces, error) {
	p := &SampleTablePieces{
		SampleEntryIndex: sampleEntryIndex,
		SampleOffset:     sampleOffset,
		DesiredEnd90k:    endRel,
		recording:        rec,
	}

	duration := rec.Duration90k()
	if startRel == 0 && int64(endRel) >= duration {
		p.SamplePos = slice.ByteRange{Begin: 0, End: rec.SampleFileBytes}
		p.Frames = rec.VideoSamples
		p.KeyFrames = rec.VideoSyncSamples
		p.ActualEnd90k = int32(duration)
		p.BeginStart90k = 0
	} else if err := p.scan(rec, startRel, endRel); err != nil {
		return nil, err
	}

	p.buildFillers()
	return p, nil
}

// scan performs the frame-by-frame path of Init: find the latest key
// frame at or before startRel, count frames up to (not including) the
// first frame whose start is >= endRel, and record the sample-file
// byte range those frames occupy.
func (p *SampleTablePieces) scan(rec *Recording, startRel, endRel int32) error {
	it := videoindex.Decode(rec.VideoIndex)
	sampleEnd := int64(0)
	first := true

	for !it.Done() {
		if first && !it.IsKey() {
			return ErrNotKeyFramed
		}
		first = false

		if it.Start90k() <= startRel && it.IsKey() {
			p.BeginStart90k = it.Start90k()
			p.SamplePos.Begin = it.Pos()
			sampleEnd = it.Pos()
			p.Frames = 0
			p.KeyFrames = 0
		}

		if it.Start90k() >= endRel {
			break
		}

		p.Frames++
		if it.IsKey() {
			p.KeyFrames++
		}
		p.ActualEnd90k = it.End90k()
		sampleEnd = it.Pos() + int64(it.Bytes())
		it.Next()
	}
	if it.HasError() {
		return &IndexDecodeError{Err: it.Err()}
	}
	p.SamplePos.End = sampleEnd
	return nil
}

// buildFillers pre-sizes the stts/stss/stsz filler slices described in
// spec.md §4.3. Each generator re-iterates the video index starting
// from BeginStart90k and stopping once iter.Start90k() >= DesiredEnd90k,
// mirroring exactly the counting pass scan performed above.
func (p *SampleTablePieces) buildFillers() {
	p.SttsFiller = slice.NewFiller(8*int64(p.Frames), p.generateStts)
	p.StssFiller = slice.NewFiller(4*int64(p.KeyFrames), p.generateStss)
	p.StszFiller = slice.NewFiller(4*int64(p.Frames), p.generateStsz)
}

// eachFrame re-decodes the video index, skips to BeginStart90k, and
// invokes fn once per frame until iter.Start90k() >= DesiredEnd90k or
// the index is exhausted. i is the 0-based index of the frame within
// this segment's window.
func (p *SampleTablePieces) eachFrame(fn func(i int, it videoindex.Iterator)) error {
	it := videoindex.Decode(p.recording.VideoIndex)
	for !it.Done() && it.Start90k() < p.BeginStart90k {
		it.Next()
	}
	i := 0
	for !it.Done() && it.Start90k() < p.DesiredEnd90k {
		fn(i, it)
		i++
		it.Next()
	}
	if it.HasError() {
		return &IndexDecodeError{Err: it.Err()}
	}
	return nil
}

func (p *SampleTablePieces) generateStts() ([]byte, error) {
	buf := make([]byte, 0, 8*p.Frames)
	err := p.eachFrame(func(_ int, it videoindex.Iterator) {
		var entry [8]byte
		binary.BigEndian.PutUint32(entry[0:4], 1)
		binary.BigEndian.PutUint32(entry[4:8], uint32(it.Duration90k()))
		buf = append(buf, entry[:]...)
	})
	return buf, err
}

func (p *SampleTablePieces) generateStss() ([]byte, error) {
	buf := make([]byte, 0, 4*p.KeyFrames)
	err := p.eachFrame(func(i int, it videoindex.Iterator) {
		if !it.IsKey() {
			return
		}
		var entry [4]byte
		binary.BigEndian.PutUint32(entry[:], uint32(p.SampleOffset)+uint32(i))
		buf = append(buf, entry[:]...)
	})
	return buf, err
}

func (p *SampleTablePieces) generateStsz() ([]byte, error) {
	buf := make([]byte, 0, 4*p.Frames)
	err := p.eachFrame(func(_ int, it videoindex.Iterator) {
		var entry [4]byte
		binary.BigEndian.PutUint32(entry[:], uint32(it.Bytes()))
		buf = append(buf, entry[:]...)
	})
	return buf, err
}
