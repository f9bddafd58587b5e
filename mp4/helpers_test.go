package mp4

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/traw/mp4vault/slice"
)

// memFile is an in-memory slice.File backing a fake sample file for
// tests, standing in for the mmap/pread-backed file spec.md §4.1
// leaves as an external collaborator.
type memFile struct {
	data []byte
}

func (f *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(f.data)) {
		return 0, fmt.Errorf("memFile: offset %d out of range", off)
	}
	n := copy(p, f.data[off:])
	return n, nil
}

func (f *memFile) Close() error { return nil }
func (f *memFile) Fd() uintptr  { return 0 }

// memDir is a fake slice.Dir keyed by sample-file UUID text.
type memDir struct {
	files map[string][]byte
}

func newMemDir() *memDir { return &memDir{files: map[string][]byte{}} }

func (d *memDir) put(id uuid.UUID, data []byte) { d.files[id.String()] = data }

func (d *memDir) Open(sampleFileUUID string) (slice.File, error) {
	data, ok := d.files[sampleFileUUID]
	if !ok {
		return nil, fmt.Errorf("memDir: no such file %s", sampleFileUUID)
	}
	return &memFile{data: data}, nil
}

// noMmapConfig disables mmap so tests run against plain ReadAt calls
// into memFile, which has no real file descriptor to map.
func noMmapConfig() slice.Config { return slice.Config{UseMmap: false} }
