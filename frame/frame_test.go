package frame_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/mewkiz/flacmeta/frame"
	"github.com/mewkiz/flacmeta/internal/flactest"
	"github.com/mewkiz/flacmeta/meta"
)

var info = &meta.StreamInfo{
	BlockSizeMin:  4096,
	BlockSizeMax:  4096,
	FrameSizeMin:  16,
	SampleRate:    44100,
	NChannels:     2,
	BitsPerSample: 16,
}

func TestParseHeader(t *testing.T) {
	golden := []struct {
		buf  []byte
		want *frame.Header
	}{
		// Block size code 1 is always 192 samples.
		{
			buf: flactest.FrameHeader(false, 0x1, 0x9, 0x1, 0x4),
			want: &frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         frame.BlockSize{Code: 0x1, Samples: 192},
				SampleRate:        frame.SampleRate{Code: 0x9, Hz: 44100},
				Channels:          frame.ChannelsLR,
				BitsPerSample:     frame.SampleSize{Code: 0x4, Bits: 16},
			},
		},
		// Code 0 fields are taken from StreamInfo.
		{
			buf: flactest.FrameHeader(true, 0x0, 0x0, 0xA, 0x0),
			want: &frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         frame.BlockSize{Code: 0x0, Samples: 4096, Source: frame.SourceStream},
				SampleRate:        frame.SampleRate{Code: 0x0, Hz: 44100, Source: frame.SourceStream},
				Channels:          frame.ChannelsMidSide,
				BitsPerSample:     frame.SampleSize{Code: 0x0, Bits: 16, Source: frame.SourceStream},
			},
		},
		// Values stored at the end of the header, and reserved codes.
		{
			buf: flactest.FrameHeader(false, 0x7, 0xF, 0xB, 0x3),
			want: &frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         frame.BlockSize{Code: 0x7, Source: frame.SourceTrailing},
				SampleRate:        frame.SampleRate{Code: 0xF, Source: frame.SourceReserved},
				Channels:          frame.Channels(0xB),
				BitsPerSample:     frame.SampleSize{Code: 0x3, Source: frame.SourceReserved},
			},
		},
		{
			buf: flactest.FrameHeader(false, 0x5, 0xC, 0x7, 0x6),
			want: &frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         frame.BlockSize{Code: 0x5, Samples: 4608},
				SampleRate:        frame.SampleRate{Code: 0xC, Source: frame.SourceTrailing},
				Channels:          frame.ChannelsLRCLfeLsRsSlSr,
				BitsPerSample:     frame.SampleSize{Code: 0x6, Bits: 24},
			},
		},
		{
			buf: flactest.FrameHeader(false, 0xF, 0x4, 0x0, 0x1),
			want: &frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         frame.BlockSize{Code: 0xF, Samples: 32768},
				SampleRate:        frame.SampleRate{Code: 0x4, Hz: 8000},
				Channels:          frame.ChannelsMono,
				BitsPerSample:     frame.SampleSize{Code: 0x1, Bits: 8},
			},
		},
	}
	for i, g := range golden {
		got, err := frame.ParseHeader(g.buf, info)
		if err != nil {
			t.Errorf("i=%d: unable to parse frame header; %v", i, err)
			continue
		}
		if diff := pretty.Compare(g.want, got); diff != "" {
			t.Errorf("i=%d: frame header mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	golden := []struct {
		name string
		buf  []byte
	}{
		{name: "short", buf: []byte{0xFF, 0xF8, 0x19}},
		{name: "no sync code", buf: []byte{0xFF, 0xF0, 0x19, 0x18}},
	}
	for _, g := range golden {
		if _, err := frame.ParseHeader(g.buf, info); err == nil {
			t.Errorf("%s: expected error, got nil", g.name)
		}
	}
}

func TestBlockSizeCodes(t *testing.T) {
	want := map[uint8]uint32{
		0x1: 192, 0x2: 576, 0x3: 1152, 0x4: 2304, 0x5: 4608,
		0x8: 256, 0x9: 512, 0xA: 1024, 0xB: 2048, 0xC: 4096, 0xD: 8192, 0xE: 16384, 0xF: 32768,
	}
	// Code 1 does not depend on the stream parameters.
	streams := []*meta.StreamInfo{nil, info, {BlockSizeMax: 192}}
	for _, si := range streams {
		for code, samples := range want {
			hdr, err := frame.ParseHeader(flactest.FrameHeader(false, code, 0x9, 0x1, 0x4), si)
			if err != nil {
				t.Fatal(err)
			}
			if hdr.BlockSize.Samples != samples {
				t.Errorf("code %04b: block size mismatch; expected %d, got %d", code, samples, hdr.BlockSize.Samples)
			}
		}
	}
}

func TestScan(t *testing.T) {
	hdr := flactest.FrameHeader(false, 0xC, 0x9, 0x1, 0x4)
	golden := []struct {
		name    string
		buf     []byte
		offset  int64
		info    *meta.StreamInfo
		offsets []int64
	}{
		{name: "empty", buf: nil},
		{name: "no sync code", buf: bytes.Repeat([]byte{0xFF, 0x00, 0x12}, 20)},
		// The 14 bit sync code is followed by a reserved bit; 0xFFFA does not
		// match 0x3FFE in its top 14 bits.
		{name: "near miss", buf: []byte{0xFF, 0xF0, 0x00, 0x00, 0xFF}},
		// Mismatches advance one byte at a time.
		{name: "resync", buf: join([]byte{0x00, 0xFF, 0x12}, hdr), offsets: []int64{3}},
		// After a match, the scanner advances by the minimum frame size.
		{
			name:    "stride",
			buf:     join(hdr, make([]byte, 12), hdr, make([]byte, 12), hdr),
			info:    info,
			offsets: []int64{0, 16, 32},
		},
		// Look-alike sync codes within the stride are skipped.
		{
			name:    "skip within stride",
			buf:     join(hdr, hdr, make([]byte, 8), hdr),
			info:    info,
			offsets: []int64{0, 16},
		},
		// Unknown minimum frame size advances by the fixed header length.
		{
			name:    "unknown minimum frame size",
			buf:     join(hdr, hdr, []byte{0x00}, hdr),
			info:    &meta.StreamInfo{SampleRate: 44100},
			offsets: []int64{0, 4, 9},
		},
		// A header needs 4 bytes.
		{name: "partial header", buf: hdr[:3]},
		{name: "offset", buf: join(hdr, hdr), offset: 1, offsets: []int64{4}},
	}
	for _, g := range golden {
		hdrs := frame.Scan(g.buf, g.offset, g.info)
		if hdrs == nil {
			t.Errorf("%s: expected non-nil frame headers", g.name)
		}
		var got []int64
		for _, hdr := range hdrs {
			got = append(got, hdr.Offset)
		}
		if diff := pretty.Compare(g.offsets, got); diff != "" {
			t.Errorf("%s: frame offsets mismatch (-want +got):\n%s", g.name, diff)
		}
	}
}

func TestScannerNext(t *testing.T) {
	hdr := flactest.FrameHeader(true, 0x1, 0x0, 0x0, 0x0)
	s := frame.NewScanner(join(make([]byte, 7), hdr), 0, info)
	got, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if got.Offset != 7 {
		t.Errorf("offset mismatch; expected 7, got %d", got.Offset)
	}
	if got.SampleRate.Hz != 44100 || got.Channels.Count() != 1 {
		t.Errorf("header mismatch; expected mono at 44100 Hz, got %v at %v", got.Channels, got.SampleRate)
	}
	for i := 0; i < 2; i++ {
		if _, err := s.Next(); err != io.EOF {
			t.Errorf("error mismatch; expected %v, got %v", io.EOF, err)
		}
	}
}

func TestChannels(t *testing.T) {
	golden := []struct {
		channels frame.Channels
		count    int
		str      string
	}{
		{channels: frame.ChannelsMono, count: 1, str: "1 channel"},
		{channels: frame.ChannelsLR, count: 2, str: "2 channels"},
		{channels: frame.ChannelsLRCLfeLsRsSlSr, count: 8, str: "8 channels"},
		{channels: frame.ChannelsLeftSide, count: 2, str: "left/side stereo"},
		{channels: frame.ChannelsSideRight, count: 2, str: "side/right stereo"},
		{channels: frame.ChannelsMidSide, count: 2, str: "mid/side stereo"},
		{channels: 0xF, count: 0, str: "reserved (1111)"},
	}
	for _, g := range golden {
		if got := g.channels.Count(); got != g.count {
			t.Errorf("channels %d: count mismatch; expected %d, got %d", uint8(g.channels), g.count, got)
		}
		if got := g.channels.String(); got != g.str {
			t.Errorf("channels %d: string mismatch; expected %q, got %q", uint8(g.channels), g.str, got)
		}
	}
}

// join concatenates the provided byte slices.
func join(bufs ...[]byte) []byte {
	return bytes.Join(bufs, nil)
}
