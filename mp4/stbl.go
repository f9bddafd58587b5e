package mp4

import "github.com/traw/mp4vault/slice"

// appendStsd appends a complete 'stsd' box (entry_count=1, one video
// sample description) to fs.
func appendStsd(fs *slice.FileSlices, entry *VideoSampleEntry) {
	b := openFullBox(fs, "stsd", [3]byte{})
	entryCount := make([]byte, 4)
	putUint32(entryCount, 1)
	appendOwned(fs, entryCount)
	fs.Append(slice.Static{Data: entry.Data})
	b.Close()
}

// appendStts appends a complete 'stts' box: entry_count = total
// frames across all segments, payload = each segment's own Filler,
// concatenated in segment order, per spec.md §4.5.
func appendStts(fs *slice.FileSlices, totalFrames int32, segments []*Mp4FileSegment) {
	b := openFullBox(fs, "stts", [3]byte{})
	entryCount := make([]byte, 4)
	putUint32(entryCount, uint32(totalFrames))
	appendOwned(fs, entryCount)
	for _, seg := range segments {
		fs.Append(seg.Pieces.SttsFiller)
	}
	b.Close()
}

// appendStss appends a complete 'stss' box: entry_count = total key
// frames across all segments, payload = each segment's own Filler,
// concatenated in segment order. A recording whose window contributes
// no key frames (frames=0) still contributes a zero-length Filler.
func appendStss(fs *slice.FileSlices, totalKeyFrames int32, segments []*Mp4FileSegment) {
	b := openFullBox(fs, "stss", [3]byte{})
	entryCount := make([]byte, 4)
	putUint32(entryCount, uint32(totalKeyFrames))
	appendOwned(fs, entryCount)
	for _, seg := range segments {
		fs.Append(seg.Pieces.StssFiller)
	}
	b.Close()
}

// appendStsz appends a complete 'stsz' box: sample_size=0 (explicit
// per-sample table follows), sample_count = total frames, payload =
// each segment's own Filler, concatenated in segment order.
func appendStsz(fs *slice.FileSlices, totalFrames int32, segments []*Mp4FileSegment) {
	b := openFullBox(fs, "stsz", [3]byte{})
	header := make([]byte, 8)
	putUint32(header[0:4], 0) // sample_size
	putUint32(header[4:8], uint32(totalFrames))
	appendOwned(fs, header)
	for _, seg := range segments {
		fs.Append(seg.Pieces.StszFiller)
	}
	b.Close()
}

// appendStsc appends a complete 'stsc' box: one row per segment,
// (chunk_index=1-based segment ordinal, samples_per_chunk=segment
// frame count, sample_description_index=1). Unlike stts/stsz/stss,
// this is small and per-segment rather than per-frame, so spec.md
// §4.3 has the Mp4File level build it eagerly rather than through a
// Filler.
func appendStsc(fs *slice.FileSlices, segments []*Mp4FileSegment) {
	b := openFullBox(fs, "stsc", [3]byte{})
	entryCount := make([]byte, 4)
	putUint32(entryCount, uint32(len(segments)))
	appendOwned(fs, entryCount)

	rows := make([]byte, 12*len(segments))
	for i, seg := range segments {
		row := rows[12*i : 12*i+12]
		putUint32(row[0:4], uint32(i+1))
		putUint32(row[4:8], uint32(seg.Pieces.Frames))
		putUint32(row[8:12], 1)
	}
	appendOwned(fs, rows)
	b.Close()
}

// appendCo64 appends a complete 'co64' box: one 64-bit running chunk
// offset per segment, starting at initialSampleBytePos — the first
// byte after the mdat header — and advancing by each segment's sample
// file byte width.
func appendCo64(fs *slice.FileSlices, initialSampleBytePos int64, segments []*Mp4FileSegment) {
	b := openFullBox(fs, "co64", [3]byte{})
	entryCount := make([]byte, 4)
	putUint32(entryCount, uint32(len(segments)))
	appendOwned(fs, entryCount)

	rows := make([]byte, 8*len(segments))
	pos := initialSampleBytePos
	for i, seg := range segments {
		putUint64(rows[8*i:8*i+8], uint64(pos))
		pos += seg.SampleFileSlice.Size()
	}
	appendOwned(fs, rows)
	b.Close()
}

// appendStbl lays out the complete 'stbl' box tree in the order
// spec.md §4.5 specifies: stsd, stts, stsc, stsz, co64, stss.
func appendStbl(fs *slice.FileSlices, entry *VideoSampleEntry, segments []*Mp4FileSegment, initialSampleBytePos int64, totalFrames, totalKeyFrames int32) {
	b := openBox(fs, "stbl")
	appendStsd(fs, entry)
	appendStts(fs, totalFrames, segments)
	appendStsc(fs, segments)
	appendStsz(fs, totalFrames, segments)
	appendCo64(fs, initialSampleBytePos, segments)
	appendStss(fs, totalKeyFrames, segments)
	b.Close()
}
