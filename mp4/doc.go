// Package mp4 assembles a single, seekable, non-fragmented ISO/IEC
// 14496-12 byte stream from one or more pre-recorded video segments,
// as a slice.FileSlices: the moov metadata tree is laid out with
// ScopedBox, the per-frame stts/stsz/stss arrays are produced lazily by
// SampleTablePieces, the per-segment stsc and co64 tables are built
// eagerly during layout, and the mdat payload passes through the segments'
// on-disk sample files untouched. Nothing here transcodes, rewrites
// NAL units, fragments the output, or supports more than one video
// track.
package mp4
