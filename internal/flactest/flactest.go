// Package flactest builds synthetic FLAC streams for tests.
package flactest

import (
	"bytes"
	"encoding/binary"

	"github.com/icza/bitio"
	"github.com/mewkiz/flacmeta/meta"
	"github.com/mewkiz/pkg/errutil"
)

// Signature is present at the beginning of each FLAC file.
const Signature = "fLaC"

// A Block is a metadata block to be stored by File.
type Block struct {
	// Metadata block body type.
	Type meta.Type
	// Metadata block body.
	Body []byte
}

// File returns a FLAC stream consisting of the signature, the provided
// metadata blocks and the trailing audio bytes. The last-block flag is set on
// the final block.
func File(audio []byte, blocks ...Block) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(Signature)
	for i, block := range blocks {
		hdr := meta.Header{
			IsLast: i == len(blocks)-1,
			Type:   block.Type,
			Length: int64(len(block.Body)),
		}
		buf.Write(Must(EncodeHeader(hdr)))
		buf.Write(block.Body)
	}
	buf.Write(audio)
	return buf.Bytes()
}

// Must panics if err is non-nil, and returns buf otherwise.
func Must(buf []byte, err error) []byte {
	if err != nil {
		panic(err)
	}
	return buf
}

// EncodeHeader encodes a metadata block header.
func EncodeHeader(hdr meta.Header) ([]byte, error) {
	buf := new(bytes.Buffer)
	bw := bitio.NewWriter(buf)
	// 1 bit: IsLast.
	if err := bw.WriteBool(hdr.IsLast); err != nil {
		return nil, errutil.Err(err)
	}
	// 7 bits: Type.
	if err := bw.WriteBits(uint64(hdr.Type), 7); err != nil {
		return nil, errutil.Err(err)
	}
	// 24 bits: Length.
	if err := bw.WriteBits(uint64(hdr.Length), 24); err != nil {
		return nil, errutil.Err(err)
	}
	if err := bw.Close(); err != nil {
		return nil, errutil.Err(err)
	}
	return buf.Bytes(), nil
}

// EncodeStreamInfo encodes the body of a StreamInfo metadata block. The MD5
// checksum is only stored if full is set; otherwise the body holds the 18
// bytes of stream parameters.
func EncodeStreamInfo(si *meta.StreamInfo, full bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	bw := bitio.NewWriter(buf)
	fields := []struct {
		x uint64
		n uint8
	}{
		{x: uint64(si.BlockSizeMin), n: 16},
		{x: uint64(si.BlockSizeMax), n: 16},
		{x: uint64(si.FrameSizeMin), n: 24},
		{x: uint64(si.FrameSizeMax), n: 24},
		{x: uint64(si.SampleRate), n: 20},
		// Stored as (number of channels) - 1.
		{x: uint64(si.NChannels - 1), n: 3},
		// Stored as (bits-per-sample) - 1.
		{x: uint64(si.BitsPerSample - 1), n: 5},
		{x: si.NSamples, n: 36},
	}
	for _, f := range fields {
		if err := bw.WriteBits(f.x, f.n); err != nil {
			return nil, errutil.Err(err)
		}
	}
	if full {
		if _, err := bw.Write(si.MD5sum[:]); err != nil {
			return nil, errutil.Err(err)
		}
	}
	if err := bw.Close(); err != nil {
		return nil, errutil.Err(err)
	}
	return buf.Bytes(), nil
}

// EncodeVorbisComment encodes the body of a VorbisComment metadata block. Each
// vector is stored verbatim, which allows malformed vectors to be encoded.
func EncodeVorbisComment(vendor string, vectors ...string) []byte {
	buf := new(bytes.Buffer)
	// 32 bits: vendor length; little-endian.
	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	// 32 bits: number of tags; little-endian.
	binary.Write(buf, binary.LittleEndian, uint32(len(vectors)))
	for _, vector := range vectors {
		// 32 bits: vector length; little-endian.
		binary.Write(buf, binary.LittleEndian, uint32(len(vector)))
		buf.WriteString(vector)
	}
	return buf.Bytes()
}

// EncodePicture encodes the body of a Picture metadata block.
func EncodePicture(pic *meta.Picture) []byte {
	buf := new(bytes.Buffer)
	be := func(x uint32) {
		binary.Write(buf, binary.BigEndian, x)
	}
	be(uint32(pic.Type))
	be(uint32(len(pic.MIME)))
	buf.WriteString(pic.MIME)
	be(uint32(len(pic.Desc)))
	buf.WriteString(pic.Desc)
	be(pic.Width)
	be(pic.Height)
	be(pic.Depth)
	be(pic.NPalColors)
	be(uint32(len(pic.Data)))
	buf.Write(pic.Data)
	return buf.Bytes()
}

// FrameHeader returns the first 4 bytes of a frame header: the 14-bit sync
// code, a reserved bit, the blocking strategy bit, and the block size, sample
// rate, channel assignment and sample size codes, followed by a reserved bit.
func FrameHeader(variable bool, blockSize, sampleRate, channels, sampleSize uint8) []byte {
	b1 := byte(0xF8)
	if variable {
		b1 |= 0x01
	}
	return []byte{
		0xFF,
		b1,
		blockSize<<4 | sampleRate&0x0F,
		channels<<4 | (sampleSize&0x07)<<1,
	}
}
