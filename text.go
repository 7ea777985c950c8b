package flacmeta

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Text returns the human-readable report of the record; see WriteText.
func (rec *Record) Text() string {
	buf := new(strings.Builder)
	// A strings.Builder never fails.
	_ = rec.WriteText(buf)
	return buf.String()
}

// WriteText writes a human-readable report of the record to w: the stream
// parameters, followed by the tags (vendor excluded) and pictures when
// present. Continuation lines of multi-line tag values are indented by four
// spaces.
//
// Example output:
//
//	Stream:
//	  block size: 4096 samples
//	  frame size: 14 - 16 bytes
//	  sample rate: 44100 Hz
//	  channels: 2
//	  bits per sample: 16
//	  samples: 5880 (133ms)
//	Tags:
//	  TITLE: My=Song
//	  ARTIST: Eve, Mallory
//	Pictures:
//	  #1: cover (front), image/png, 500x500, 24 bits per pixel, 1234 bytes
func (rec *Record) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if info := rec.Info; info != nil {
		fmt.Fprintln(bw, "Stream:")
		if info.HasFixedBlockSize() {
			fmt.Fprintf(bw, "  block size: %d samples\n", info.BlockSizeMin)
		} else {
			fmt.Fprintf(bw, "  block size: %d - %d samples\n", info.BlockSizeMin, info.BlockSizeMax)
		}
		fmt.Fprintf(bw, "  frame size: %s - %s bytes\n", unknownIfZero(uint64(info.FrameSizeMin)), unknownIfZero(uint64(info.FrameSizeMax)))
		fmt.Fprintf(bw, "  sample rate: %d Hz\n", info.SampleRate)
		fmt.Fprintf(bw, "  channels: %d\n", info.NChannels)
		fmt.Fprintf(bw, "  bits per sample: %d\n", info.BitsPerSample)
		if info.NSamples == 0 {
			fmt.Fprintln(bw, "  samples: unknown")
		} else {
			fmt.Fprintf(bw, "  samples: %d (%v)\n", info.NSamples, info.Duration().Round(time.Millisecond))
		}
	}
	if rec.Tags != nil && rec.Tags.Tags.Len() > 0 {
		fmt.Fprintln(bw, "Tags:")
		for _, name := range rec.Tags.Tags.Names() {
			values := rec.Tags.Tags.Get(name)
			sort.Strings(values)
			// Continuation lines of multi-line values are indented below the
			// tag name.
			s := strings.ReplaceAll(strings.Join(values, ", "), "\n", "\n    ")
			fmt.Fprintf(bw, "  %s: %s\n", name, s)
		}
	}
	if len(rec.Pictures) > 0 {
		fmt.Fprintln(bw, "Pictures:")
		for i, pic := range rec.Pictures {
			fmt.Fprintf(bw, "  #%d: %v, %s, %dx%d, %d bits per pixel, %d bytes", i+1, pic.Type, pic.MIME, pic.Width, pic.Height, pic.Depth, len(pic.Data))
			if pic.Desc != "" {
				fmt.Fprintf(bw, ", %q", pic.Desc)
			}
			fmt.Fprintln(bw)
		}
	}
	if rec.Frames != nil {
		fmt.Fprintf(bw, "Frames: %d (approximate)\n", len(rec.Frames))
	}
	return bw.Flush()
}

// unknownIfZero returns the decimal representation of x, or "unknown" if x is
// 0.
func unknownIfZero(x uint64) string {
	if x == 0 {
		return "unknown"
	}
	return fmt.Sprint(x)
}
