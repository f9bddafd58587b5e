package mp4

import "encoding/binary"

// BasicBox is the 8-byte header shared by every ISO/IEC 14496-12 box:
// [size(4)][type(4)], both big-endian.
type BasicBox struct {
	Size uint32
	Type [4]byte
}

func (b BasicBox) Encode() []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf, b.Size)
	copy(buf[4:8], b.Type[:])
	return buf
}

// FullBox is a BasicBox extended with a one-byte version and 3-byte
// flags field, per the FullBox class of the ISO base media file
// format. mp4vault only ever emits version 0 boxes: none of the
// fields this core writes (durations, sample counts, byte offsets
// below 4 GiB) need the 64-bit variants version 1 enables.
type FullBox struct {
	Box     BasicBox
	Version uint8
	Flags   [3]byte
}

func (b FullBox) Encode() []byte {
	buf := append(b.Box.Encode(), b.Version)
	return append(buf, b.Flags[:]...)
}

func newBasicBox(boxType string, size int) BasicBox {
	var bb BasicBox
	bb.Size = uint32(size)
	copy(bb.Type[:], boxType)
	return bb
}

func newFullBox(boxType string, size int, flags [3]byte) FullBox {
	return FullBox{Box: newBasicBox(boxType, size), Flags: flags}
}

func putUint32(buf []byte, v uint32) { binary.BigEndian.PutUint32(buf, v) }
func putUint64(buf []byte, v uint64) { binary.BigEndian.PutUint64(buf, v) }
