package mp4

import (
	"encoding/binary"

	"github.com/traw/mp4vault/slice"
)

// ScopedBox implements the BoxBuilder / ScopedBox pattern of spec.md
// §4.4. The teacher library (yapingcat/gomedia) computes a box's size
// up front from its own already-in-memory fields and writes a single
// flat buffer; that doesn't work here, because a container's children
// can be Filler slices whose declared size is cheap arithmetic but
// whose bytes don't exist yet, and because the whole virtual file is
// never materialized to let anything seek back and patch in place.
// ScopedBox generalizes the teacher's pattern to that constraint: it
// records where the container started in the FileSlices, appends a
// mutable placeholder header, lets the caller append any number of
// child slices (including nested ScopedBoxes), and on Close measures
// how much grew and patches the header in place.
//
// Open/Close pairs must nest in strict LIFO order, matching spec.md
// §4.4; ScopedBox itself does not enforce this — callers follow the
// same open, append children, then Close discipline the box-tree
// assembly in moov.go, stbl.go and file.go uses throughout.
type ScopedBox struct {
	fs          *slice.FileSlices
	header      *slice.OwnedCopy
	startOffset int64
	large       bool
}

// openBox begins a plain (non-FullBox) container or leaf box of type
// boxType whose content is appended after openBox returns. The header
// is built here with a zero size field that Close patches.
func openBox(fs *slice.FileSlices, boxType string) *ScopedBox {
	header := &slice.OwnedCopy{Data: newBasicBox(boxType, 0).Encode()}
	return open(fs, header, false)
}

// openFullBox begins a FullBox container, with version/flags baked
// into the header up front since, unlike size, they never depend on
// the children appended afterward.
func openFullBox(fs *slice.FileSlices, boxType string, flags [3]byte) *ScopedBox {
	header := &slice.OwnedCopy{Data: newFullBox(boxType, 0, flags).Encode()}
	return open(fs, header, false)
}

// openLargeBox begins a box using the large-size form required for
// mdat: [size=1][type][largesize(8)]. Close patches largesize, not
// size, which stays 1 forever.
func openLargeBox(fs *slice.FileSlices, boxType string) *ScopedBox {
	header := newBasicBox(boxType, 1).Encode()
	header = append(header, make([]byte, 8)...)
	return open(fs, &slice.OwnedCopy{Data: header}, true)
}

func open(fs *slice.FileSlices, header *slice.OwnedCopy, large bool) *ScopedBox {
	b := &ScopedBox{fs: fs, header: header, startOffset: fs.Size(), large: large}
	fs.Append(header)
	return b
}

// Close patches the header's size field with the number of bytes
// appended to fs since Open.
func (b *ScopedBox) Close() {
	total := uint64(b.fs.Size() - b.startOffset)
	if b.large {
		binary.BigEndian.PutUint64(b.header.Data[8:16], total)
		return
	}
	binary.BigEndian.PutUint32(b.header.Data[0:4], uint32(total))
}

// appendOwned appends buf as its own OwnedCopy slice — the usual way
// a leaf box's already-complete Encode() output joins a container.
func appendOwned(fs *slice.FileSlices, buf []byte) {
	fs.Append(&slice.OwnedCopy{Data: buf})
}

// appendStatic appends buf as a Static slice, for box bodies that
// never change between Mp4Files (vmhd, dinf, hdlr).
func appendStatic(fs *slice.FileSlices, buf []byte) {
	fs.Append(slice.Static{Data: buf})
}
