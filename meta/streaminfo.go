package meta

import (
	"time"

	"github.com/go-audio/audio"
	"github.com/mewkiz/flacmeta/internal/bits"
)

// StreamInfo contains the basic properties of a FLAC audio stream, such as its
// sample rate and channel count. It must be present as the first metadata
// block of a FLAC stream.
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_streaminfo
type StreamInfo struct {
	// Minimum block size (in samples) used in the stream.
	BlockSizeMin uint16
	// Maximum block size (in samples) used in the stream.
	BlockSizeMax uint16
	// Minimum frame size in bytes; a 0 value implies unknown.
	FrameSizeMin uint32
	// Maximum frame size in bytes; a 0 value implies unknown.
	FrameSizeMax uint32
	// Sample rate in Hz; never 0.
	SampleRate uint32
	// Number of channels; between 1 and 8.
	NChannels uint8
	// Sample size in bits-per-sample; between 4 and 32.
	BitsPerSample uint8
	// Total number of inter-channel samples in the stream. One second of 44.1
	// KHz audio will have 44100 samples regardless of the number of channels. A
	// 0 value implies unknown.
	NSamples uint64
	// MD5 checksum of the unencoded audio data; all zero when the block carries
	// only the mandatory 18 bytes. It is not verified.
	MD5sum [16]uint8
}

const (
	// streamInfoMinLen is the number of bytes holding the stream parameters.
	streamInfoMinLen = 18
	// streamInfoLen is the size of a complete StreamInfo block, MD5 included.
	streamInfoLen = streamInfoMinLen + 16
)

// ParseStreamInfo decodes the body of a StreamInfo metadata block. Bytes past
// the first 18 are only used for the MD5 checksum, when all 16 are present.
//
// StreamInfo format (pseudo code):
//
//	type METADATA_BLOCK_STREAMINFO struct {
//	   block_size_min  uint16
//	   block_size_max  uint16
//	   frame_size_min  uint24
//	   frame_size_max  uint24
//	   sample_rate     uint20
//	   n_channels      uint3 // (number of channels)-1
//	   bits_per_sample uint5 // (bits-per-sample)-1
//	   n_samples       uint36
//	   md5sum          [16]byte
//	}
//
// ParseStreamInfo fails with a FormatError of kind InvalidStreamParameters if
// the body is shorter than 18 bytes or the sample rate is 0.
func ParseStreamInfo(body []byte) (*StreamInfo, error) {
	if len(body) < streamInfoMinLen {
		return nil, errorf(InvalidStreamParameters, 0, "block body of %d bytes is shorter than %d bytes", len(body), streamInfoMinLen)
	}
	fields, err := bits.Fields(body[:streamInfoMinLen], 16, 16, 24, 24, 20, 3, 5, 36)
	if err != nil {
		return nil, errorf(InvalidStreamParameters, 0, "%v", err)
	}
	si := &StreamInfo{
		BlockSizeMin:  uint16(fields[0]),
		BlockSizeMax:  uint16(fields[1]),
		FrameSizeMin:  uint32(fields[2]),
		FrameSizeMax:  uint32(fields[3]),
		SampleRate:    uint32(fields[4]),
		NChannels:     uint8(fields[5]) + 1,
		BitsPerSample: uint8(fields[6]) + 1,
		NSamples:      fields[7],
	}
	if si.SampleRate == 0 {
		// Offset of the packed sample rate field.
		return nil, errorf(InvalidStreamParameters, 10, "invalid sample rate; 0 Hz")
	}
	if len(body) >= streamInfoLen {
		copy(si.MD5sum[:], body[streamInfoMinLen:streamInfoLen])
	}
	return si, nil
}

// HasFixedBlockSize reports whether every frame of the stream uses the same
// block size.
func (si *StreamInfo) HasFixedBlockSize() bool {
	return si.BlockSizeMin == si.BlockSizeMax
}

// Duration returns the play time of the stream, or 0 if the number of samples
// is unknown.
func (si *StreamInfo) Duration() time.Duration {
	if si.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(si.NSamples) / float64(si.SampleRate) * float64(time.Second))
}

// Format returns the audio format of the stream, as expected by playback
// engines built on go-audio.
func (si *StreamInfo) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(si.NChannels),
		SampleRate:  int(si.SampleRate),
	}
}
