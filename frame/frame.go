// Package frame implements access to the headers of FLAC audio frames.
//
// Each audio frame starts with a header holding the basic properties of the
// frame, such as its block size and sample rate. To facilitate random access
// decoding each frame header starts with a sync-code, which allows a reader to
// locate frame headers without decoding the audio samples between them.
//
// ref: https://www.xiph.org/flac/format.html#frame
package frame

import (
	"io"

	"github.com/mewkiz/flacmeta/meta"
)

// A Scanner locates frame headers by searching a FLAC file for sync codes.
//
// The length of a frame is only known after decoding its subframes, which is
// not supported. After a header is found the scanner advances by the minimum
// frame size of the stream, and resynchronizes byte by byte from there. The
// frames located are therefore approximate; a sync code may be missed within
// a short frame, and a sync code look-alike within audio data may be reported.
type Scanner struct {
	// FLAC file contents.
	buf []byte
	// Read offset into buf.
	pos int64
	// Stream parameters used to resolve frame header fields.
	info *meta.StreamInfo
}

// NewScanner returns a new Scanner which searches buf for frame headers,
// starting at offset; normally meta.Locations.AudioOffset. The stream
// parameters resolve header fields which refer to StreamInfo; info may be nil.
func NewScanner(buf []byte, offset int64, info *meta.StreamInfo) *Scanner {
	return &Scanner{buf: buf, pos: offset, info: info}
}

// Next returns the next frame header. It returns io.EOF when no further sync
// code is present; the absence of frames is not an error.
func (s *Scanner) Next() (*Header, error) {
	size := int64(len(s.buf))
	for ; s.pos+headerLen <= size; s.pos++ {
		if !hasSyncCode(s.buf[s.pos:]) {
			continue
		}
		hdr, err := ParseHeader(s.buf[s.pos:s.pos+headerLen], s.info)
		if err != nil {
			// should be unreachable; the sync code and length are checked above.
			return nil, err
		}
		hdr.Offset = s.pos
		s.pos += s.stride()
		return hdr, nil
	}
	s.pos = size
	return nil, io.EOF
}

// stride returns the number of bytes to skip after a frame header.
func (s *Scanner) stride() int64 {
	if s.info == nil || s.info.FrameSizeMin == 0 {
		// Unknown minimum frame size; skip the fixed part of the header.
		return headerLen
	}
	return int64(s.info.FrameSizeMin)
}

// Scan returns the frame headers located in buf from offset onwards, in file
// order. The returned slice is empty but non-nil if no frame header is found.
// See Scanner for the accuracy of the result.
func Scan(buf []byte, offset int64, info *meta.StreamInfo) []*Header {
	hdrs := make([]*Header, 0)
	s := NewScanner(buf, offset, info)
	for {
		hdr, err := s.Next()
		if err != nil {
			return hdrs
		}
		hdrs = append(hdrs, hdr)
	}
}
