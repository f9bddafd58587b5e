package mp4

import "github.com/traw/mp4vault/slice"

// appendMinf lays out 'minf': the static vmhd+dinf blob followed by
// stbl.
func appendMinf(fs *slice.FileSlices, entry *VideoSampleEntry, segments []*Mp4FileSegment, initialSampleBytePos int64, totalFrames, totalKeyFrames int32) {
	b := openBox(fs, "minf")
	appendStatic(fs, vmhdDinfBytes)
	appendStbl(fs, entry, segments, initialSampleBytePos, totalFrames, totalKeyFrames)
	b.Close()
}

// appendMdia lays out 'mdia': mdhd, the static hdlr, then minf.
func appendMdia(fs *slice.FileSlices, durationTicks, creationTs uint32, entry *VideoSampleEntry, segments []*Mp4FileSegment, initialSampleBytePos int64, totalFrames, totalKeyFrames int32) {
	b := openBox(fs, "mdia")
	appendOwned(fs, buildMdhd(durationTicks, creationTs))
	appendStatic(fs, hdlrBytes)
	appendMinf(fs, entry, segments, initialSampleBytePos, totalFrames, totalKeyFrames)
	b.Close()
}

// appendTrak lays out 'trak': tkhd, then mdia.
func appendTrak(fs *slice.FileSlices, durationTicks, creationTs uint32, entry *VideoSampleEntry, segments []*Mp4FileSegment, initialSampleBytePos int64, totalFrames, totalKeyFrames int32) {
	b := openBox(fs, "trak")
	appendOwned(fs, buildTkhd(durationTicks, creationTs, entry.Width, entry.Height))
	appendMdia(fs, durationTicks, creationTs, entry, segments, initialSampleBytePos, totalFrames, totalKeyFrames)
	b.Close()
}

// appendMoov lays out the complete 'moov' tree: mvhd, then the single
// video trak.
func appendMoov(fs *slice.FileSlices, durationTicks, creationTs uint32, entry *VideoSampleEntry, segments []*Mp4FileSegment, initialSampleBytePos int64, totalFrames, totalKeyFrames int32) {
	b := openBox(fs, "moov")
	appendOwned(fs, buildMvhd(durationTicks, creationTs))
	appendTrak(fs, durationTicks, creationTs, entry, segments, initialSampleBytePos, totalFrames, totalKeyFrames)
	b.Close()
}
