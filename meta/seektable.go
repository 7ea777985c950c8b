package meta

import "encoding/binary"

// SeekTable contains one or more pre-calculated audio frame seek points.
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_seektable
type SeekTable struct {
	// One or more seek points.
	Points []SeekPoint
}

// seekPointLen is the size in bytes of a seek point.
const seekPointLen = 18

// PlaceholderPoint is the sample number of a placeholder seek point.
const PlaceholderPoint = 0xFFFFFFFFFFFFFFFF

// ParseSeekTable decodes the body of a SeekTable metadata block. The number of
// seek points is derived from the block length, divided by the size of a seek
// point; trailing bytes which do not form a complete seek point are ignored.
//
// Seek point format (pseudo code):
//
//	type SEEKPOINT struct {
//	   sample_num uint64
//	   offset     uint64
//	   n_samples  uint16
//	}
func ParseSeekTable(body []byte) (*SeekTable, error) {
	n := len(body) / seekPointLen
	if n < 1 {
		return nil, errorf(Truncated, 0, "seek table of %d bytes holds no seek point", len(body))
	}
	r := newReader(body, Truncated)
	table := &SeekTable{Points: make([]SeekPoint, n)}
	for i := range table.Points {
		buf, err := r.readBytes(seekPointLen, "seek point")
		if err != nil {
			return nil, err
		}
		table.Points[i] = SeekPoint{
			SampleNum: binary.BigEndian.Uint64(buf[0:8]),
			Offset:    binary.BigEndian.Uint64(buf[8:16]),
			NSamples:  binary.BigEndian.Uint16(buf[16:18]),
		}
	}
	return table, nil
}

// A SeekPoint specifies the byte offset and initial sample number of a given
// target frame.
//
// ref: https://www.xiph.org/flac/format.html#seekpoint
type SeekPoint struct {
	// Sample number of the first sample in the target frame, or
	// PlaceholderPoint.
	SampleNum uint64
	// Offset in bytes from the first byte of the first frame header to the first
	// byte of the target frame's header.
	Offset uint64
	// Number of samples in the target frame.
	NSamples uint16
}

// IsPlaceholder reports whether the seek point is a placeholder.
func (point SeekPoint) IsPlaceholder() bool {
	return point.SampleNum == PlaceholderPoint
}
