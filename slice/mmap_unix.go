//go:build linux || darwin

package slice

import "golang.org/x/sys/unix"

// mmapRegion maps [begin, begin+length) of fd read-only and, when
// sequential is set, advises the kernel accordingly. begin is passed to
// mmap unchanged, so it must be a multiple of the page size; for any
// other begin the mmap call fails and its error is returned. Grounded on the
// golang.org/x/sys/unix mmap/madvise calls already pulled in,
// transitively, by the retrieval pack's own low-level packet-plane
// code.
func mmapRegion(fd int, begin, length int64, sequential bool) ([]byte, error) {
	data, err := unix.Mmap(fd, begin, int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	if sequential {
		_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	}
	return data, nil
}

func munmapRegion(data []byte) error {
	return unix.Munmap(data)
}

const mmapSupported = true
