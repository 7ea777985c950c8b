package flacmeta_test

import (
	"testing"

	"github.com/mewkiz/flacmeta"
	"github.com/mewkiz/flacmeta/internal/flactest"
	"github.com/mewkiz/flacmeta/meta"
)

func TestRecordText(t *testing.T) {
	golden := []struct {
		name   string
		blocks []flactest.Block
		opts   []flacmeta.Option
		want   string
	}{
		{
			name:   "stream only",
			blocks: []flactest.Block{streamInfoBlock(&meta.StreamInfo{BlockSizeMin: 192, BlockSizeMax: 4608, SampleRate: 96000, NChannels: 6, BitsPerSample: 24})},
			want: `Stream:
  block size: 192 - 4608 samples
  frame size: unknown - unknown bytes
  sample rate: 96000 Hz
  channels: 6
  bits per sample: 24
  samples: unknown
`,
		},
		{
			name: "tags and pictures",
			blocks: []flactest.Block{
				streamInfoBlock(cdInfo),
				{Type: meta.TypeVorbisComment, Body: flactest.EncodeVorbisComment("vendor", "TITLE=My=Song", "ARTIST=Mallory", "ARTIST=Eve")},
				{Type: meta.TypePicture, Body: flactest.EncodePicture(cover)},
			},
			opts: []flacmeta.Option{flacmeta.WithFrames()},
			want: `Stream:
  block size: 4096 samples
  frame size: 14 - 16 bytes
  sample rate: 44100 Hz
  channels: 2
  bits per sample: 16
  samples: 5880 (133ms)
Tags:
  TITLE: My=Song
  ARTIST: Eve, Mallory
Pictures:
  #1: cover (front), image/png, 500x500, 24 bits per pixel, 8 bytes, "cover"
Frames: 0 (approximate)
`,
		},
		// Multi-line values stay with their tag.
		{
			name: "multi-line tag value",
			blocks: []flactest.Block{
				streamInfoBlock(cdInfo),
				{Type: meta.TypeVorbisComment, Body: flactest.EncodeVorbisComment("vendor", "LYRICS=line one\nchorus=loud", "TITLE=t")},
			},
			want: `Stream:
  block size: 4096 samples
  frame size: 14 - 16 bytes
  sample rate: 44100 Hz
  channels: 2
  bits per sample: 16
  samples: 5880 (133ms)
Tags:
  LYRICS: line one
    chorus=loud
  TITLE: t
`,
		},
		// An empty tag block renders no tags section.
		{
			name: "empty tags",
			blocks: []flactest.Block{
				streamInfoBlock(cdInfo),
				{Type: meta.TypeVorbisComment, Body: flactest.EncodeVorbisComment("vendor")},
			},
			want: `Stream:
  block size: 4096 samples
  frame size: 14 - 16 bytes
  sample rate: 44100 Hz
  channels: 2
  bits per sample: 16
  samples: 5880 (133ms)
`,
		},
	}
	for _, g := range golden {
		rec, err := flacmeta.ParseBytes(flactest.File(nil, g.blocks...), g.opts...)
		if err != nil {
			t.Errorf("%s: unable to parse; %v", g.name, err)
			continue
		}
		if got := rec.Text(); got != g.want {
			t.Errorf("%s: text mismatch; expected\n%s\ngot\n%s", g.name, g.want, got)
		}
	}
}
