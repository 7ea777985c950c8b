package meta_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/mewkiz/flacmeta/internal/flactest"
	"github.com/mewkiz/flacmeta/meta"
)

func TestParseStreamInfo(t *testing.T) {
	golden := []struct {
		body []byte
		want *meta.StreamInfo
	}{
		// Stream parameters of the form 4096/4096, 24 bit stereo at 44.1 kHz.
		{
			body: []byte{
				0x10, 0x00, 0x10, 0x00, // block sizes
				0x00, 0x44, 0xC5, 0x00, 0x45, 0x88, // frame sizes
				0x0A, 0xC4, 0x43, 0x70, 0x00, 0x00, 0x20, 0x00, // packed word
				0x95, 0xBA, 0xE5, 0xE2, 0xC7, 0x45, 0xBB, 0x3C, 0xA9, 0x5C, 0xA3, 0xB1, 0x35, 0xC9, 0x43, 0xF4, // MD5
			},
			want: &meta.StreamInfo{BlockSizeMin: 0x1000, BlockSizeMax: 0x1000, FrameSizeMin: 0x44C5, FrameSizeMax: 0x4588, SampleRate: 44100, NChannels: 2, BitsPerSample: 24, NSamples: 0x2000, MD5sum: [16]uint8{0x95, 0xBA, 0xE5, 0xE2, 0xC7, 0x45, 0xBB, 0x3C, 0xA9, 0x5C, 0xA3, 0xB1, 0x35, 0xC9, 0x43, 0xF4}},
		},
		// Channel code 1 and depth code 15 report 2 channels at 16 bits.
		{
			body: []byte{
				0x12, 0x00, 0x12, 0x00,
				0x00, 0x00, 0x0E, 0x00, 0x00, 0x10,
				0x0A, 0xC4, 0x42, 0xF0, 0x00, 0x00, 0x16, 0xF8,
			},
			want: &meta.StreamInfo{BlockSizeMin: 0x1200, BlockSizeMax: 0x1200, FrameSizeMin: 0xE, FrameSizeMax: 0x10, SampleRate: 44100, NChannels: 2, BitsPerSample: 16, NSamples: 0x16F8},
		},
	}
	for i, g := range golden {
		got, err := meta.ParseStreamInfo(g.body)
		if err != nil {
			t.Errorf("i=%d: unable to parse StreamInfo; %v", i, err)
			continue
		}
		if diff := pretty.Compare(g.want, got); diff != "" {
			t.Errorf("i=%d: StreamInfo mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestStreamInfoRoundTrip(t *testing.T) {
	golden := []*meta.StreamInfo{
		{BlockSizeMin: 16, BlockSizeMax: 65535, FrameSizeMin: 0, FrameSizeMax: 0xFFFFFF, SampleRate: 655350, NChannels: 8, BitsPerSample: 32, NSamples: 0xFFFFFFFFF},
		{BlockSizeMin: 4608, BlockSizeMax: 4608, FrameSizeMin: 14, FrameSizeMax: 16, SampleRate: 44100, NChannels: 2, BitsPerSample: 16, NSamples: 5880},
		{BlockSizeMin: 192, BlockSizeMax: 4096, FrameSizeMin: 1, FrameSizeMax: 2, SampleRate: 1, NChannels: 1, BitsPerSample: 4, NSamples: 0},
	}
	for i, want := range golden {
		body := flactest.Must(flactest.EncodeStreamInfo(want, false))
		if len(body) != 18 {
			t.Fatalf("i=%d: encoded length mismatch; expected 18, got %d", i, len(body))
		}
		got, err := meta.ParseStreamInfo(body)
		if err != nil {
			t.Errorf("i=%d: unable to parse StreamInfo; %v", i, err)
			continue
		}
		if diff := pretty.Compare(want, got); diff != "" {
			t.Errorf("i=%d: StreamInfo mismatch (-want +got):\n%s", i, diff)
		}
		// Re-encoding reproduces the original 18 bytes.
		again := flactest.Must(flactest.EncodeStreamInfo(got, false))
		if !bytes.Equal(body, again) {
			t.Errorf("i=%d: re-encoded StreamInfo mismatch; expected % X, got % X", i, body, again)
		}
	}
}

func TestParseStreamInfoInvalid(t *testing.T) {
	zeroRate := flactest.Must(flactest.EncodeStreamInfo(&meta.StreamInfo{SampleRate: 0, NChannels: 2, BitsPerSample: 16}, true))
	golden := []struct {
		name string
		body []byte
	}{
		{name: "empty", body: nil},
		{name: "short", body: make([]byte, 17)},
		{name: "zero sample rate", body: zeroRate},
	}
	for _, g := range golden {
		_, err := meta.ParseStreamInfo(g.body)
		if !errors.Is(err, meta.ErrInvalidStreamParameters) {
			t.Errorf("%s: error mismatch; expected %v, got %v", g.name, meta.ErrInvalidStreamParameters, err)
		}
	}
}

func TestStreamInfoDerived(t *testing.T) {
	si := &meta.StreamInfo{BlockSizeMin: 4096, BlockSizeMax: 4096, SampleRate: 48000, NChannels: 6, BitsPerSample: 24, NSamples: 72000}
	if !si.HasFixedBlockSize() {
		t.Errorf("expected fixed block size")
	}
	if got, want := si.Duration(), 1500*time.Millisecond; got != want {
		t.Errorf("duration mismatch; expected %v, got %v", want, got)
	}
	format := si.Format()
	if format.NumChannels != 6 || format.SampleRate != 48000 {
		t.Errorf("format mismatch; expected 6 channels at 48000 Hz, got %d channels at %d Hz", format.NumChannels, format.SampleRate)
	}
	si.BlockSizeMin = 192
	if si.HasFixedBlockSize() {
		t.Errorf("expected variable block size")
	}
}
