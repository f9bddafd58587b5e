package videoindex

import "encoding/binary"

// Builder assembles an index blob that Decode can read back, for use
// in tests that need a concrete Recording.VideoIndex without hitting a
// real on-disk index.
type Builder struct {
	buf []byte
}

// AddSample appends one frame of duration90k ticks and size bytes,
// marked as a key frame iff isKey.
func (b *Builder) AddSample(duration90k int32, size int32, isKey bool) *Builder {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(duration90k))
	b.buf = append(b.buf, tmp[:n]...)

	sizeAndKey := uint64(size) << 1
	if isKey {
		sizeAndKey |= 1
	}
	n = binary.PutUvarint(tmp[:], sizeAndKey)
	b.buf = append(b.buf, tmp[:n]...)
	return b
}

// Bytes returns the encoded index blob built so far.
func (b *Builder) Bytes() []byte { return b.buf }
