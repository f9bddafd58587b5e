package mp4

// The boxes in this file never vary between Mp4Files: they carry no
// per-recording data, so each is built once, as a byte literal, and
// shared by every Mp4File as a slice.Static slice — mirroring the
// "Static: borrows a compile-time byte literal" variant of spec.md
// §4.1.

var ftypBytes = buildFtyp()
var hdlrBytes = buildHdlr()
var vmhdDinfBytes = append(buildVmhd(), buildDinf()...)

// buildFtyp returns a complete 'ftyp' box: major_brand 'isom',
// minor_version 0x00000200, compatible_brands isom/iso2/avc1/mp41 — a
// conventional, widely-playable brand set for a non-fragmented
// single-track AVC file. spec.md leaves the exact brand list
// unspecified; this is an Open Question decision, recorded in
// DESIGN.md.
func buildFtyp() []byte {
	body := make([]byte, 0, 4+4+4*4)
	body = append(body, "isom"...)
	body = append(body, 0x00, 0x00, 0x02, 0x00)
	body = append(body, "isom"...)
	body = append(body, "iso2"...)
	body = append(body, "avc1"...)
	body = append(body, "mp41"...)
	box := newBasicBox("ftyp", 8+len(body)).Encode()
	return append(box, body...)
}

// buildHdlr returns a complete static 'hdlr' box declaring the single
// video handler, per spec.md §4.5's "hdlr (static: 'vide')".
func buildHdlr() []byte {
	const name = "VideoHandler\x00"
	body := make([]byte, 0, 4+4+12+len(name))
	body = append(body, 0, 0, 0, 0)          // pre_defined
	body = append(body, "vide"...)           // handler_type
	body = append(body, make([]byte, 12)...) // reserved[3]
	body = append(body, name...)

	box := newFullBox("hdlr", 12+len(body), [3]byte{}).Encode()
	return append(box, body...)
}

// buildVmhd returns a complete static 'vmhd' box. Flags = 1 per the
// ISO spec's "this is a video track" convention.
func buildVmhd() []byte {
	body := make([]byte, 8) // graphicsmode(2) + opcolor(3*2), all zero
	box := newFullBox("vmhd", 12+len(body), [3]byte{0, 0, 1}).Encode()
	return append(box, body...)
}

// buildDinf returns a complete static 'dinf' box containing a single
// self-contained 'dref' entry ('url ' with flags=1, no string data —
// meaning the referenced data is in the same file).
func buildDinf() []byte {
	urlBox := newFullBox("url ", 12, [3]byte{0, 0, 1}).Encode()

	drefBody := make([]byte, 4) // entry_count = 1
	putUint32(drefBody, 1)
	drefBody = append(drefBody, urlBox...)
	drefBox := newFullBox("dref", 12+len(drefBody), [3]byte{}).Encode()
	drefBox = append(drefBox, drefBody...)

	dinfBox := newBasicBox("dinf", 8+len(drefBox)).Encode()
	return append(dinfBox, drefBox...)
}
