package meta

// A Location is the byte range of a metadata block body within a FLAC file.
// The range excludes the 4 byte block header; End-Start equals the length
// declared by the header.
type Location struct {
	// Metadata block header.
	Header
	// Offset of the first byte of the block body.
	Start int64
	// Offset one past the last byte of the block body.
	End int64
}

// Len returns the length in bytes of the block body.
func (loc Location) Len() int64 {
	return loc.End - loc.Start
}

// Locations indexes the metadata blocks of a FLAC file.
type Locations struct {
	// StreamInfo block; nil if not present. A repeated block replaces the
	// previous one.
	StreamInfo *Location
	// VorbisComment block; nil if not present. A repeated block replaces the
	// previous one.
	VorbisComment *Location
	// Picture blocks, in file order.
	Pictures []Location
	// All metadata blocks, of any type, in file order.
	Blocks []Location
	// Offset immediately following the last metadata block; the expected start
	// of the first audio frame.
	AudioOffset int64
}

// signatureLen is the size in bytes of the "fLaC" signature which precedes the
// first metadata block.
const signatureLen = 4

// Walk locates the metadata blocks of the FLAC file held in buf, which must
// include the leading signature. Blocks are walked from offset 4 until a
// header with the last-block flag set has been processed.
//
// Walk fails with a FormatError of kind Truncated if a block header or body
// runs past the end of buf.
func Walk(buf []byte) (*Locations, error) {
	size := int64(len(buf))
	locs := new(Locations)
	pos := int64(signatureLen)
	for {
		if pos+headerLen > size {
			return nil, errorf(Truncated, pos, "metadata block header runs past end of file (%d bytes)", size)
		}
		var raw [headerLen]byte
		copy(raw[:], buf[pos:pos+headerLen])
		hdr := ParseHeader(raw)
		loc := Location{
			Header: hdr,
			Start:  pos + headerLen,
			End:    pos + headerLen + hdr.Length,
		}
		if loc.End > size {
			return nil, errorf(Truncated, pos, "%v block body of %d bytes runs past end of file (%d bytes)", hdr.Type, hdr.Length, size)
		}

		switch hdr.Type {
		case TypeStreamInfo:
			l := loc
			locs.StreamInfo = &l
		case TypeVorbisComment:
			l := loc
			locs.VorbisComment = &l
		case TypePicture:
			locs.Pictures = append(locs.Pictures, loc)
		}
		locs.Blocks = append(locs.Blocks, loc)

		pos = loc.End
		if hdr.IsLast {
			break
		}
	}
	locs.AudioOffset = pos
	return locs, nil
}

// Body returns the block body of loc within buf.
func (loc Location) Body(buf []byte) []byte {
	return buf[loc.Start:loc.End]
}
