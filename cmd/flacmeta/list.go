package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/mewkiz/flacmeta"
	"github.com/mewkiz/flacmeta/meta"
	"github.com/pkg/errors"
)

// list lists the metadata blocks of the provided FLAC file.
func list(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	rec, err := flacmeta.ParseBytes(buf)
	if err != nil {
		return err
	}
	for blockNum, loc := range rec.Blocks {
		listHeader(loc.Header, blockNum)
		if err := listBody(loc, loc.Body(buf)); err != nil {
			fmt.Printf("  invalid block: %v\n", err)
		}
	}
	return nil
}

// listBody lists the body of a metadata block.
func listBody(loc meta.Location, body []byte) error {
	switch loc.Type {
	case meta.TypeStreamInfo:
		si, err := meta.ParseStreamInfo(body)
		if err != nil {
			return err
		}
		listStreamInfo(si)
	case meta.TypeApplication:
		app, err := meta.ParseApplication(body)
		if err != nil {
			return err
		}
		listApplication(app, body[4:])
	case meta.TypeSeekTable:
		table, err := meta.ParseSeekTable(body)
		if err != nil {
			return err
		}
		listSeekTable(table)
	case meta.TypeVorbisComment:
		vc, err := meta.ParseVorbisComment(body)
		if err != nil {
			return err
		}
		listVorbisComment(vc)
	case meta.TypePicture:
		pic, err := meta.ParsePicture(body)
		if err != nil {
			return err
		}
		listPicture(pic)
	}
	return nil
}

// typeName maps from metadata block type to a string version of its name.
var typeName = map[meta.Type]string{
	meta.TypeStreamInfo:    "STREAMINFO",
	meta.TypePadding:       "PADDING",
	meta.TypeApplication:   "APPLICATION",
	meta.TypeSeekTable:     "SEEKTABLE",
	meta.TypeVorbisComment: "VORBIS_COMMENT",
	meta.TypeCueSheet:      "CUESHEET",
	meta.TypePicture:       "PICTURE",
}

// Example:
//
//	METADATA block #0
//	  type: 0 (STREAMINFO)
//	  is last: false
//	  length: 34
func listHeader(hdr meta.Header, blockNum int) {
	name, ok := typeName[hdr.Type]
	if !ok {
		name = "UNKNOWN"
	}
	fmt.Printf("METADATA block #%d\n", blockNum)
	fmt.Printf("  type: %d (%s)\n", hdr.Type, name)
	fmt.Printf("  is last: %t\n", hdr.IsLast)
	fmt.Printf("  length: %d\n", hdr.Length)
}

// Example:
//
//	  minimum blocksize: 4608 samples
//	  maximum blocksize: 4608 samples
//	  minimum framesize: 0 bytes
//	  maximum framesize: 19024 bytes
//	  sample_rate: 44100 Hz
//	  channels: 2
//	  bits-per-sample: 16
//	  total samples: 151007220
//	  MD5 signature: 2e6238f5d9fe5c19f3ead628f750fd3d
func listStreamInfo(si *meta.StreamInfo) {
	fmt.Printf("  minimum blocksize: %d samples\n", si.BlockSizeMin)
	fmt.Printf("  maximum blocksize: %d samples\n", si.BlockSizeMax)
	fmt.Printf("  minimum framesize: %d bytes\n", si.FrameSizeMin)
	fmt.Printf("  maximum framesize: %d bytes\n", si.FrameSizeMax)
	fmt.Printf("  sample_rate: %d Hz\n", si.SampleRate)
	fmt.Printf("  channels: %d\n", si.NChannels)
	fmt.Printf("  bits-per-sample: %d\n", si.BitsPerSample)
	fmt.Printf("  total samples: %d\n", si.NSamples)
	fmt.Printf("  MD5 signature: %x\n", si.MD5sum)
}

// Example:
//
//	  application ID: 46696361
//	  data contents:
//	Medieval CUE Splitter (www.medieval.it)
func listApplication(app *meta.Application, data []byte) {
	fmt.Printf("  application ID: %x (%v)\n", string(app.ID), app.ID)
	fmt.Println("  data contents:")
	if app.DataLen > 0 {
		fmt.Print(hex.Dump(data))
	}
}

// Example:
//
//	  seek points: 17
//	    point 0: sample_number=0, stream_offset=0, frame_samples=4608
//	    point 1: sample_number=2419200, stream_offset=3733871, frame_samples=4608
//	    ...
func listSeekTable(table *meta.SeekTable) {
	fmt.Printf("  seek points: %d\n", len(table.Points))
	for pointNum, point := range table.Points {
		if point.IsPlaceholder() {
			fmt.Printf("    point %d: PLACEHOLDER\n", pointNum)
		} else {
			fmt.Printf("    point %d: sample_number=%d, stream_offset=%d, frame_samples=%d\n", pointNum, point.SampleNum, point.Offset, point.NSamples)
		}
	}
}

// Example:
//
//	  vendor string: reference libFLAC 1.2.1 20070917
//	  comments: 2
//	    comment[0]: ALBUM=「sugar sweet nightmare」 & 「化物語」劇伴音楽集 其の壹
//	    comment[1]: ARTIST=神前暁
func listVorbisComment(vc *meta.VorbisComment) {
	fmt.Printf("  vendor string: %s\n", vc.Vendor)
	var n int
	for _, name := range vc.Tags.Names() {
		n += len(vc.Tags.Get(name))
	}
	fmt.Printf("  comments: %d\n", n)
	var tagNum int
	for _, name := range vc.Tags.Names() {
		for _, value := range vc.Tags.Get(name) {
			fmt.Printf("    comment[%d]: %s=%s\n", tagNum, name, value)
			tagNum++
		}
	}
}

// Example:
//
//	  type: 3 (cover (front))
//	  MIME type: image/jpeg
//	  description:
//	  width: 0
//	  height: 0
//	  depth: 0
//	  colors: 0 (unindexed)
//	  data length: 234569
//	  data:
//	00000000  ff d8 ff e0 00 10 4a 46  49 46 00 01 01 01 00 60  |......JFIF.....`|
func listPicture(pic *meta.Picture) {
	fmt.Printf("  type: %d (%v)\n", uint32(pic.Type), pic.Type)
	fmt.Printf("  MIME type: %s\n", pic.MIME)
	fmt.Printf("  description: %s\n", pic.Desc)
	fmt.Printf("  width: %d\n", pic.Width)
	fmt.Printf("  height: %d\n", pic.Height)
	fmt.Printf("  depth: %d\n", pic.Depth)
	fmt.Printf("  colors: %d", pic.NPalColors)
	if pic.NPalColors == 0 {
		fmt.Print(" (unindexed)")
	}
	fmt.Println()
	fmt.Printf("  data length: %d\n", len(pic.Data))
	fmt.Printf("  data:\n")
	fmt.Print(hex.Dump(pic.Data))
}
