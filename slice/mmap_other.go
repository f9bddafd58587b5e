//go:build !linux && !darwin

package slice

import "errors"

// mmapRegion is unavailable on this platform; SampleFile falls back
// to pread-style ReadAt regardless of Config.UseMmap.
func mmapRegion(fd int, begin, length int64, sequential bool) ([]byte, error) {
	return nil, errors.New("slice: mmap unsupported on this platform")
}

func munmapRegion(data []byte) error { return nil }

const mmapSupported = false
