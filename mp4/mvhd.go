package mp4

// buildMvhd returns a complete 'mvhd' box: single video timescale
// 90000, per spec.md §4.5. creationTs is seconds since 1904-01-01 UTC
// (spec.md's creation_ts), reused for both creation_time and
// modification_time since this core never distinguishes them.
func buildMvhd(durationTicks uint32, creationTs uint32) []byte {
	body := make([]byte, 96)
	putUint32(body[0:4], creationTs)
	putUint32(body[4:8], creationTs)
	putUint32(body[8:12], 90000) // timescale
	putUint32(body[12:16], durationTicks)
	putUint32(body[16:20], 0x00010000) // rate = 1.0
	body[20], body[21] = 0x01, 0x00    // volume = 1.0
	// body[22:24] reserved(2), body[24:32] reserved(2*4) already zero
	writeIdentityMatrix(body[32:68])
	// body[68:92] pre_defined[6] already zero
	putUint32(body[92:96], 2) // next_track_ID

	box := newFullBox("mvhd", 12+len(body), [3]byte{}).Encode()
	return append(box, body...)
}

// writeIdentityMatrix writes the ISO/IEC 14496-12 unity transform
// matrix: { 0x00010000,0,0, 0,0x00010000,0, 0,0,0x40000000 }.
func writeIdentityMatrix(dst []byte) {
	_ = dst[35]
	putUint32(dst[0:4], 0x00010000)
	putUint32(dst[16:20], 0x00010000)
	putUint32(dst[32:36], 0x40000000)
}
