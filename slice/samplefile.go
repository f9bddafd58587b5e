package slice

import (
	"fmt"
	"io"
	"sync"
)

// SampleFile is a FileSlice over a byte sub-range of a recording's
// on-disk sample file. The mapping (or, on platforms/configs that
// disable mmap, nothing at all — reads go straight through ReadAt) is
// established lazily, the first time any byte is touched, under a
// one-time initializer; a second concurrent caller blocks on the same
// sync.Once rather than racing to establish it twice.
type SampleFile struct {
	dir  Dir
	uuid string
	sub  ByteRange
	cfg  Config

	once   sync.Once
	file   File
	mapped []byte
	err    error
}

// OpenSampleFileSlice implements the sample-file open interface of
// spec.md §6: sub is relative to the whole sample file, and
// Size() == sub.End - sub.Begin.
func OpenSampleFileSlice(dir Dir, sampleFileUUID string, sub ByteRange, cfg Config) *SampleFile {
	return &SampleFile{dir: dir, uuid: sampleFileUUID, sub: sub, cfg: cfg}
}

func (s *SampleFile) Size() int64 { return s.sub.Len() }

func (s *SampleFile) establish() {
	s.once.Do(func() {
		f, err := s.dir.Open(s.uuid)
		if err != nil {
			s.err = fmt.Errorf("%w: open %s: %v", ErrSampleFileIO, s.uuid, err)
			return
		}
		s.file = f
		if !s.cfg.UseMmap || !mmapSupported || s.sub.Len() == 0 {
			return
		}
		data, err := mmapRegion(int(f.Fd()), s.sub.Begin, s.sub.Len(), s.cfg.SequentialHint)
		if err != nil {
			// Fall back to ReadAt rather than failing the whole slice;
			// mmap can legitimately fail (e.g. address space pressure)
			// without the underlying file being unreadable. It always
			// fails when sub.Begin is not page-aligned, since the
			// offset is not rounded down, so such sub-ranges are read
			// through ReadAt rather than mapped.
			return
		}
		s.mapped = data
	})
}

func (s *SampleFile) AddRange(r ByteRange, out io.Writer) (int64, error) {
	s.establish()
	if s.err != nil {
		return 0, s.err
	}
	if s.mapped != nil {
		n, err := out.Write(s.mapped[r.Begin:r.End])
		return int64(n), err
	}
	buf := make([]byte, r.Len())
	if _, err := s.file.ReadAt(buf, s.sub.Begin+r.Begin); err != nil {
		return 0, fmt.Errorf("%w: read %s: %v", ErrSampleFileIO, s.uuid, err)
	}
	n, err := out.Write(buf)
	return int64(n), err
}

// Close releases the mapping, if any, and closes the underlying file
// handle. The owning Mp4File calls this for every segment's sample
// file slice when it is itself closed; there is no finalizer-based
// cleanup since that would make the release point nondeterministic.
func (s *SampleFile) Close() error {
	if s.mapped != nil {
		_ = munmapRegion(s.mapped)
		s.mapped = nil
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
