package slice

import (
	"fmt"
	"io"
	"sort"
	"sync/atomic"
)

// FileSlices is an append-only, ordered sequence of FileSlice
// producers with a parallel array of cumulative end offsets,
// supporting O(log N + k) range resolution across the whole
// composed virtual file.
type FileSlices struct {
	slices []FileSlice
	ends   []int64 // ends[i] is the cumulative end offset of slices[i]
	// frozen is set by AddRange; atomic so concurrent readers do not race.
	frozen atomic.Bool
}

// Append extends the sequence with slice s. Must not be called after
// the first AddRange.
func (fs *FileSlices) Append(s FileSlice) {
	if fs.frozen.Load() {
		panic("slice: Append called on a FileSlices after AddRange")
	}
	base := int64(0)
	if n := len(fs.ends); n > 0 {
		base = fs.ends[n-1]
	}
	fs.slices = append(fs.slices, s)
	fs.ends = append(fs.ends, base+s.Size())
}

// Size returns the total length of the composed virtual file.
func (fs *FileSlices) Size() int64 {
	if len(fs.ends) == 0 {
		return 0
	}
	return fs.ends[len(fs.ends)-1]
}

// AddRange writes bytes [r.Begin, r.End) of the composed virtual file
// to out, visiting intersecting slices in increasing offset order and
// skipping any slice with a zero-width intersection.
func (fs *FileSlices) AddRange(r ByteRange, out io.Writer) (int64, error) {
	fs.frozen.Store(true)
	if r.Begin < 0 || r.End < r.Begin || r.End > fs.Size() {
		return 0, fmt.Errorf("slice: range [%d,%d) out of bounds for size %d", r.Begin, r.End, fs.Size())
	}
	if r.Begin == r.End {
		return 0, nil
	}

	// First slice whose cumulative end exceeds r.Begin.
	i := sort.Search(len(fs.ends), func(i int) bool { return fs.ends[i] > r.Begin })

	var written int64
	pos := r.Begin
	for ; i < len(fs.slices) && pos < r.End; i++ {
		end := fs.ends[i]
		begin := int64(0)
		if i > 0 {
			begin = fs.ends[i-1]
		}
		if end <= pos {
			continue
		}
		sliceBegin := pos - begin
		sliceEnd := r.End
		if sliceEnd > end {
			sliceEnd = end
		}
		sliceEnd -= begin
		n, err := fs.slices[i].AddRange(ByteRange{Begin: sliceBegin, End: sliceEnd}, out)
		written += n
		pos += n
		if err != nil {
			return written, err
		}
		if n != sliceEnd-sliceBegin {
			return written, fmt.Errorf("slice: short write from slice %d: wrote %d of %d", i, n, sliceEnd-sliceBegin)
		}
	}
	return written, nil
}
