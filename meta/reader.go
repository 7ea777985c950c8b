package meta

import (
	"encoding/binary"
	"unicode/utf8"
)

// A reader decodes the fields of a metadata block body held in memory. Every
// read is bounds checked against the end of the body; violations are reported
// as a FormatError of the reader's kind, so a length field pointing past the
// block is never silently truncated.
type reader struct {
	// Metadata block body.
	buf []byte
	// Read offset into buf.
	pos int
	// Error kind reported on violations.
	kind Kind
}

// newReader returns a reader of the given block body.
func newReader(buf []byte, kind Kind) *reader {
	return &reader{buf: buf, kind: kind}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// readBytes reads and returns exactly n bytes. The returned slice aliases the
// block body; it is the callers responsibility to make a copy if the data is
// retained.
func (r *reader) readBytes(n uint64, what string) ([]byte, error) {
	if n > uint64(r.remaining()) {
		return nil, errorf(r.kind, int64(r.pos), "%s of %d bytes runs past end of block (%d bytes remaining)", what, n, r.remaining())
	}
	buf := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return buf, nil
}

// readUint32BE reads a big-endian 32-bit unsigned integer.
func (r *reader) readUint32BE(what string) (uint32, error) {
	buf, err := r.readBytes(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// readUint32LE reads a little-endian 32-bit unsigned integer.
func (r *reader) readUint32LE(what string) (uint32, error) {
	buf, err := r.readBytes(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// readUTF8 reads a string of n bytes, which must be valid UTF-8.
func (r *reader) readUTF8(n uint64, what string) (string, error) {
	start := int64(r.pos)
	buf, err := r.readBytes(n, what)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", errorf(r.kind, start, "%s is not valid UTF-8", what)
	}
	return string(buf), nil
}
