package frame

import (
	"fmt"

	"github.com/mewkiz/flacmeta/internal/bits"
	"github.com/mewkiz/flacmeta/meta"
)

// SyncCode is the 14 bit sync code of frame headers. Bit representation:
// 11111111111110.
const SyncCode = 0x3FFE

// headerLen is the size in bytes of the fixed part of a frame header.
const headerLen = 4

// hasSyncCode reports whether buf starts with the frame sync code.
func hasSyncCode(buf []byte) bool {
	if len(buf) < 2 {
		return false
	}
	x := uint16(buf[0])<<8 | uint16(buf[1])
	return x>>2 == SyncCode
}

// A Header contains the basic properties of an audio frame, such as its sample
// rate and channel count.
//
// ref: https://www.xiph.org/flac/format.html#frame_header
type Header struct {
	// Offset of the frame header within the file; approximate, see Scanner.
	Offset int64
	// Specifies if the block size is fixed or variable.
	HasFixedBlockSize bool
	// Block size in inter-channel samples, i.e. the number of audio samples in
	// each subframe.
	BlockSize BlockSize
	// Sample rate.
	SampleRate SampleRate
	// Specifies the number of channels (subframes) that exist in the frame,
	// their order and possible inter-channel decorrelation.
	Channels Channels
	// Sample size in bits-per-sample.
	BitsPerSample SampleSize
}

// ParseHeader decodes the fixed 4 byte part of a frame header. Fields which
// refer to StreamInfo are resolved using info, which may be nil. Reserved codes
// are not an error; the fields are marked SourceReserved.
//
// Frame header format (pseudo code):
//
//	type FRAME_HEADER struct {
//	   sync_code          uint14
//	   _                  uint1
//	   blocking_strategy  uint1
//	   block_size         uint4
//	   sample_rate        uint4
//	   channel_assignment uint4
//	   sample_size        uint3
//	   _                  uint1
//	   // Followed by the "UTF-8" coded frame or sample number, the optional
//	   // block size and sample rate fields, and a CRC-8; none of which are
//	   // decoded.
//	}
func ParseHeader(buf []byte, info *meta.StreamInfo) (*Header, error) {
	if len(buf) < headerLen {
		return nil, fmt.Errorf("frame.ParseHeader: frame header of %d bytes is shorter than %d bytes", len(buf), headerLen)
	}
	fields, err := bits.Fields(buf[:headerLen], 14, 1, 1, 4, 4, 4, 3, 1)
	if err != nil {
		return nil, err
	}
	if fields[0] != SyncCode {
		return nil, fmt.Errorf("frame.ParseHeader: invalid sync code; expected '%014b', got '%014b'", SyncCode, fields[0])
	}
	if info == nil {
		info = new(meta.StreamInfo)
	}
	hdr := &Header{
		// Blocking strategy:
		//    0: fixed block size.
		//    1: variable block size.
		HasFixedBlockSize: fields[2] == 0,
		BlockSize:         blockSize(uint8(fields[3]), info),
		SampleRate:        sampleRate(uint8(fields[4]), info),
		Channels:          Channels(fields[5]),
		BitsPerSample:     sampleSize(uint8(fields[6]), info),
	}
	return hdr, nil
}

// Source specifies where the value of a coded frame header field comes from.
type Source uint8

// Value sources.
const (
	// SourceCode: the value is given by the code.
	SourceCode Source = iota
	// SourceStream: the value is taken from StreamInfo.
	SourceStream
	// SourceTrailing: the value is stored at the end of the frame header, and
	// is not decoded.
	SourceTrailing
	// SourceReserved: reserved or invalid code; the value is unknown.
	SourceReserved
)

// sourceName maps from value source to name.
var sourceName = [...]string{
	SourceCode:     "code",
	SourceStream:   "stream",
	SourceTrailing: "trailing",
	SourceReserved: "reserved",
}

func (src Source) String() string {
	if int(src) < len(sourceName) {
		return sourceName[src]
	}
	return fmt.Sprintf("<unknown source %d>", uint8(src))
}

// BlockSize is the block size of a frame.
type BlockSize struct {
	// 4 bit block size code.
	Code uint8
	// Block size in samples; 0 if unknown.
	Samples uint32
	// Source of the value.
	Source Source
}

func (bs BlockSize) String() string {
	if bs.Samples == 0 {
		return fmt.Sprintf("unknown (%v code %04b)", bs.Source, bs.Code)
	}
	return fmt.Sprintf("%d samples", bs.Samples)
}

// blockSize resolves a block size code.
//
//	0000: maximum block size of StreamInfo.
//	0001: 192 samples.
//	0010-0101: 576 * (2^(n-2)) samples, i.e. 576/1152/2304/4608.
//	0110: get 8 bit (block size)-1 from the end of the header.
//	0111: get 16 bit (block size)-1 from the end of the header.
//	1000-1111: 256 * (2^(n-8)) samples, i.e. 256/512/1024/2048/4096/8192/
//	           16384/32768.
func blockSize(n uint8, info *meta.StreamInfo) BlockSize {
	bs := BlockSize{Code: n}
	switch {
	case n == 0x0:
		bs.Samples = uint32(info.BlockSizeMax)
		bs.Source = SourceStream
	case n == 0x1:
		bs.Samples = 192
	case n >= 0x2 && n <= 0x5:
		bs.Samples = 576 << (n - 2)
	case n == 0x6, n == 0x7:
		bs.Source = SourceTrailing
	case n >= 0x8 && n <= 0xF:
		bs.Samples = 256 << (n - 8)
	default:
		// should be unreachable; n is a 4 bit code.
		bs.Source = SourceReserved
	}
	return bs
}

// SampleRate is the sample rate of a frame.
//
// Codes 1100 through 1110 store the rate after the fixed part of the header.
// Those bytes are not decoded, so such frames report Hz 0 with SourceTrailing;
// the rate is unknown rather than reserved. Only code 1111 is reserved.
type SampleRate struct {
	// 4 bit sample rate code.
	Code uint8
	// Sample rate in Hz; 0 if unknown.
	Hz uint32
	// Source of the value.
	Source Source
}

func (sr SampleRate) String() string {
	if sr.Hz == 0 {
		return fmt.Sprintf("unknown (%v code %04b)", sr.Source, sr.Code)
	}
	return fmt.Sprintf("%d Hz", sr.Hz)
}

// sampleRates maps from sample rate code to sample rate in Hz, for the codes
// which specify the sample rate directly.
var sampleRates = [...]uint32{
	0x1: 88200,
	0x2: 176400,
	0x3: 192000,
	0x4: 8000,
	0x5: 16000,
	0x6: 22050,
	0x7: 24000,
	0x8: 32000,
	0x9: 44100,
	0xA: 48000,
	0xB: 96000,
}

// sampleRate resolves a sample rate code.
//
//	0000: sample rate of StreamInfo.
//	0001: 88.2 kHz.
//	0010: 176.4 kHz.
//	0011: 192 kHz.
//	0100: 8 kHz.
//	0101: 16 kHz.
//	0110: 22.05 kHz.
//	0111: 24 kHz.
//	1000: 32 kHz.
//	1001: 44.1 kHz.
//	1010: 48 kHz.
//	1011: 96 kHz.
//	1100: get 8 bit sample rate (in kHz) from the end of the header.
//	1101: get 16 bit sample rate (in Hz) from the end of the header.
//	1110: get 16 bit sample rate (in daHz) from the end of the header.
//	1111: invalid, to prevent sync-fooling string of 1s.
func sampleRate(n uint8, info *meta.StreamInfo) SampleRate {
	sr := SampleRate{Code: n}
	switch {
	case n == 0x0:
		sr.Hz = info.SampleRate
		sr.Source = SourceStream
	case n >= 0x1 && n <= 0xB:
		sr.Hz = sampleRates[n]
	case n >= 0xC && n <= 0xE:
		sr.Source = SourceTrailing
	default:
		// 1111: invalid.
		sr.Source = SourceReserved
	}
	return sr
}

// SampleSize is the sample size of a frame.
type SampleSize struct {
	// 3 bit sample size code.
	Code uint8
	// Sample size in bits-per-sample; 0 if unknown.
	Bits uint8
	// Source of the value.
	Source Source
}

func (ss SampleSize) String() string {
	if ss.Bits == 0 {
		return fmt.Sprintf("unknown (%v code %03b)", ss.Source, ss.Code)
	}
	return fmt.Sprintf("%d bits", ss.Bits)
}

// sampleSize resolves a sample size code.
//
//	000: bits-per-sample of StreamInfo.
//	001: 8 bits-per-sample.
//	010: 12 bits-per-sample.
//	011: reserved.
//	100: 16 bits-per-sample.
//	101: 20 bits-per-sample.
//	110: 24 bits-per-sample.
//	111: reserved.
func sampleSize(n uint8, info *meta.StreamInfo) SampleSize {
	ss := SampleSize{Code: n}
	switch n {
	case 0x0:
		ss.Bits = info.BitsPerSample
		ss.Source = SourceStream
	case 0x1:
		ss.Bits = 8
	case 0x2:
		ss.Bits = 12
	case 0x4:
		ss.Bits = 16
	case 0x5:
		ss.Bits = 20
	case 0x6:
		ss.Bits = 24
	default:
		// 011: reserved.
		// 111: reserved.
		ss.Source = SourceReserved
	}
	return ss
}

// Channels specifies the number of channels (subframes) that exist in a frame,
// their order and possible inter-channel decorrelation.
type Channels uint8

// Channel assignments. The following abbreviations are used:
//
//	C:   center (directly in front)
//	R:   right (standard stereo)
//	Sr:  side right (directly to the right)
//	Rs:  right surround (back right)
//	Cs:  center surround (rear center)
//	Ls:  left surround (back left)
//	Sl:  side left (directly to the left)
//	L:   left (standard stereo)
//	Lfe: low-frequency effect (placed according to room acoustics)
//
// The first 6 channel constants follow the SMPTE/ITU-R channel order:
//
//	L R C Lfe Ls Rs
const (
	ChannelsMono           Channels = iota // 1 channel: mono.
	ChannelsLR                             // 2 channels: left, right.
	ChannelsLRC                            // 3 channels: left, right, center.
	ChannelsLRLsRs                         // 4 channels: left, right, left surround, right surround.
	ChannelsLRCLsRs                        // 5 channels: left, right, center, left surround, right surround.
	ChannelsLRCLfeLsRs                     // 6 channels: left, right, center, LFE, left surround, right surround.
	ChannelsLRCLfeCsSlSr                   // 7 channels: left, right, center, LFE, center surround, side left, side right.
	ChannelsLRCLfeLsRsSlSr                 // 8 channels: left, right, center, LFE, left surround, right surround, side left, side right.
	ChannelsLeftSide                       // 2 channels: left, side; using inter-channel decorrelation.
	ChannelsSideRight                      // 2 channels: side, right; using inter-channel decorrelation.
	ChannelsMidSide                        // 2 channels: mid, side; using inter-channel decorrelation.
)

// nChannels specifies the number of channels used by each channel assignment.
var nChannels = [...]int{
	ChannelsMono:           1,
	ChannelsLR:             2,
	ChannelsLRC:            3,
	ChannelsLRLsRs:         4,
	ChannelsLRCLsRs:        5,
	ChannelsLRCLfeLsRs:     6,
	ChannelsLRCLfeCsSlSr:   7,
	ChannelsLRCLfeLsRsSlSr: 8,
	ChannelsLeftSide:       2,
	ChannelsSideRight:      2,
	ChannelsMidSide:        2,
}

// channelsName specifies the name of each decorrelated channel assignment.
var channelsName = map[Channels]string{
	ChannelsLeftSide:  "left/side",
	ChannelsSideRight: "side/right",
	ChannelsMidSide:   "mid/side",
}

// IsReserved reports whether the channel assignment is one of the reserved
// codes 1011-1111.
func (channels Channels) IsReserved() bool {
	return int(channels) >= len(nChannels)
}

// IsDecorrelated reports whether the channels use inter-channel
// decorrelation.
func (channels Channels) IsDecorrelated() bool {
	_, ok := channelsName[channels]
	return ok
}

// Count returns the number of channels (subframes) used by the provided channel
// assignment, or 0 for reserved codes.
func (channels Channels) Count() int {
	if channels.IsReserved() {
		return 0
	}
	return nChannels[channels]
}

func (channels Channels) String() string {
	switch {
	case channels.IsReserved():
		return fmt.Sprintf("reserved (%04b)", uint8(channels))
	case channels.IsDecorrelated():
		return channelsName[channels] + " stereo"
	case channels == ChannelsMono:
		return "1 channel"
	}
	return fmt.Sprintf("%d channels", channels.Count())
}
