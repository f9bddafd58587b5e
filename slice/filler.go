package slice

import (
	"io"
	"sync"
)

// FillerFunc produces the entirety of a Filler's declared-size buffer
// on first use. It must be pure: the runtime may invoke it at most
// once (protected by a sync.Once) and its result is cached forever
// after.
type FillerFunc func() ([]byte, error)

// Filler is a FileSlice whose size is known up front but whose content
// is expensive enough to defer until the first byte is actually
// requested. Sample tables are the canonical use: size is a cheap
// arithmetic function of frame counts, but producing the bytes means
// re-scanning a recording's sample index.
type Filler struct {
	declaredSize int64
	generate     FillerFunc

	once sync.Once
	buf  []byte
	err  error
}

// NewFiller builds a Filler that will materialize exactly declaredSize
// bytes via generate the first time any byte is requested.
func NewFiller(declaredSize int64, generate FillerFunc) *Filler {
	return &Filler{declaredSize: declaredSize, generate: generate}
}

func (f *Filler) Size() int64 { return f.declaredSize }

func (f *Filler) materialize() {
	f.once.Do(func() {
		buf, err := f.generate()
		if err != nil {
			f.err = &FillerBackendError{Err: err}
			return
		}
		if int64(len(buf)) != f.declaredSize {
			f.err = ErrFillerWrongSize
			return
		}
		f.buf = buf
	})
}

func (f *Filler) AddRange(r ByteRange, out io.Writer) (int64, error) {
	f.materialize()
	if f.err != nil {
		return 0, f.err
	}
	n, err := out.Write(f.buf[r.Begin:r.End])
	return int64(n), err
}
