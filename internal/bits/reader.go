// Package bits provides bit access operations used to decode the non-byte
// aligned fields of FLAC headers.
package bits

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// A Reader handles bit reading operations. It reads the most significant bit
// of each byte first.
type Reader struct {
	// Underlying bit reader.
	br *bitio.Reader
}

// NewReader returns a new Reader that reads bits from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Read reads and returns the next n bits, at most 64. It returns
// io.ErrUnexpectedEOF if the underlying reader runs out of data part way
// through the field.
func (br *Reader) Read(n uint) (x uint64, err error) {
	if n == 0 {
		return 0, nil
	}
	if n > 64 {
		return 0, fmt.Errorf("bits.Reader.Read: invalid number of bits; expected <= 64, got %d", n)
	}
	x, err = br.br.ReadBits(uint8(n))
	if err != nil {
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return x, nil
}

// ReadFields reads one field per provided bit width and returns their values
// in order.
func (br *Reader) ReadFields(widths ...uint) ([]uint64, error) {
	fields := make([]uint64, len(widths))
	for i, n := range widths {
		x, err := br.Read(n)
		if err != nil {
			return nil, err
		}
		fields[i] = x
	}
	return fields, nil
}

// Fields slices buf into consecutive big-endian bit fields of the provided
// widths. The sum of the widths must not exceed 8*len(buf).
//
// Example: the metadata block header
//
//	Fields(hdr[:], 1, 7, 24) // is_last, block_type, length
func Fields(buf []byte, widths ...uint) ([]uint64, error) {
	var total uint
	for _, n := range widths {
		total += n
	}
	if total > 8*uint(len(buf)) {
		return nil, fmt.Errorf("bits.Fields: %d bits requested from %d byte buffer", total, len(buf))
	}
	return NewReader(bytes.NewReader(buf)).ReadFields(widths...)
}
