package mp4

// buildMdhd returns a complete 'mdhd' box: timescale 90000, language
// the literal packed value 0x55c4 ("und"), per spec.md §4.5. The
// teacher library derives language codes bit-by-bit through a
// BitStream helper; mp4vault never emits anything but "und", so the
// already-packed 16-bit constant is written directly instead.
func buildMdhd(durationTicks uint32, creationTs uint32) []byte {
	body := make([]byte, 20)
	putUint32(body[0:4], creationTs)
	putUint32(body[4:8], creationTs)
	putUint32(body[8:12], 90000) // timescale
	putUint32(body[12:16], durationTicks)
	body[16], body[17] = 0x55, 0xc4 // language = "und"
	// body[18:20] pre_defined, already zero

	box := newFullBox("mdhd", 12+len(body), [3]byte{}).Encode()
	return append(box, body...)
}
