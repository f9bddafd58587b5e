package mp4

// buildTkhd returns a complete 'tkhd' box for the single video track
// (track_ID=1), per spec.md §4.5: flags=7 (enabled|in_movie|in_preview),
// width/height are 16.16 fixed-point (pixel dimensions shifted left
// by 16).
func buildTkhd(durationTicks uint32, creationTs uint32, width, height uint16) []byte {
	body := make([]byte, 80)
	putUint32(body[0:4], creationTs)
	putUint32(body[4:8], creationTs)
	putUint32(body[8:12], 1) // track_ID
	// body[12:16] reserved, already zero
	putUint32(body[16:20], durationTicks)
	// body[20:28] reserved(2*4), body[28:30] layer, body[30:32] alternate_group: zero
	// body[32:34] volume = 0 (non-audio track), body[34:36] reserved
	writeIdentityMatrix(body[36:72])
	putUint32(body[72:76], uint32(width)<<16)
	putUint32(body[76:80], uint32(height)<<16)

	box := newFullBox("tkhd", 12+len(body), [3]byte{0, 0, 7}).Encode()
	return append(box, body...)
}
