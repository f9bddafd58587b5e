package videoindex

import (
	"encoding/binary"
	"fmt"
)

// Decode returns an Iterator over index, a run of records each
// encoded as two LEB128 varints: the sample's duration in 90k ticks,
// then its byte size left-shifted by one with the key-frame flag
// packed into the low bit. This is mp4vault's reference codec for the
// otherwise-opaque "video_index: bytes" field of the Recording entity
// (spec.md §3) — a concrete stand-in for the external recording
// database's actual on-disk format, which the distilled spec leaves
// unspecified.
//
// Construction places the cursor at frame 0, if the index is
// non-empty; Next advances to each subsequent frame. Done reports
// true once there is no current frame to read, which is immediately,
// for an empty index.
func Decode(index []byte) Iterator {
	d := &decoded{data: index}
	d.advance()
	return d
}

type frame struct {
	start90k    int32
	duration90k int32
	bytes       int32
	isKey       bool
	pos         int64
}

type decoded struct {
	data []byte
	off  int

	cur     frame
	nextPos int64 // cumulative byte offset for the frame after cur
	done    bool
	err     error
}

func (d *decoded) Done() bool     { return d.done || d.err != nil }
func (d *decoded) HasError() bool { return d.err != nil }
func (d *decoded) Err() error     { return d.err }

// advance decodes the next record in d.data into d.cur, or sets done
// (or err, on corruption) if there is none.
func (d *decoded) advance() {
	if d.off >= len(d.data) {
		d.done = true
		return
	}
	nextStart := d.cur.start90k + d.cur.duration90k

	duration, n := binary.Uvarint(d.data[d.off:])
	if n <= 0 {
		d.err = fmt.Errorf("videoindex: corrupt duration varint at offset %d", d.off)
		return
	}
	d.off += n
	sizeAndKey, n := binary.Uvarint(d.data[d.off:])
	if n <= 0 {
		d.err = fmt.Errorf("videoindex: corrupt size varint at offset %d", d.off)
		return
	}
	d.off += n

	size := int32(sizeAndKey >> 1)
	d.cur = frame{
		start90k:    nextStart,
		duration90k: int32(duration),
		bytes:       size,
		isKey:       sizeAndKey&1 == 1,
		pos:         d.nextPos,
	}
	d.nextPos += int64(size)
}

func (d *decoded) Next() {
	if d.done || d.err != nil {
		return
	}
	d.advance()
}

func (d *decoded) Start90k() int32    { return d.cur.start90k }
func (d *decoded) Duration90k() int32 { return d.cur.duration90k }
func (d *decoded) End90k() int32      { return d.cur.start90k + d.cur.duration90k }
func (d *decoded) Bytes() int32       { return d.cur.bytes }
func (d *decoded) IsKey() bool        { return d.cur.isKey }
func (d *decoded) Pos() int64         { return d.cur.pos }
