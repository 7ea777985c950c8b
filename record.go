package flacmeta

import (
	"github.com/mewkiz/flacmeta/frame"
	"github.com/mewkiz/flacmeta/meta"
)

// A Record holds the metadata of a FLAC file. It is built once per parse, and
// is not modified afterwards; it is safe for concurrent reads.
type Record struct {
	// Path of the FLAC file; empty for streams.
	Path string
	// Size of the FLAC file in bytes.
	Size int64
	// Stream parameters; never nil.
	Info *meta.StreamInfo
	// Vendor string and tags; nil if no VorbisComment block is present, or if
	// it was malformed.
	Tags *meta.VorbisComment
	// Embedded pictures, in file order. Malformed Picture blocks are skipped.
	Pictures []*meta.Picture
	// Frame headers; only located if WithFrames was set. The positions are
	// approximate; see frame.Scanner.
	Frames []*frame.Header
	// Every metadata block of the file, in file order.
	Blocks []meta.Location
	// Malformed metadata blocks which were skipped.
	Diagnostics []Diagnostic
}

// Vendor returns the vendor string of the encoder, or an empty string if no
// VorbisComment block is present.
func (rec *Record) Vendor() string {
	if rec.Tags == nil {
		return ""
	}
	return rec.Tags.Vendor
}

// Tag returns the values of every tag whose name equals name under case
// folding.
func (rec *Record) Tag(name string) []string {
	if rec.Tags == nil {
		return nil
	}
	return rec.Tags.Tags.Lookup(name)
}

// CoverArt returns the front cover of the file, or the first picture if no
// front cover is present. It returns nil if the file holds no pictures.
func (rec *Record) CoverArt() *meta.Picture {
	for _, pic := range rec.Pictures {
		if pic.Type == meta.PictureFrontCover {
			return pic
		}
	}
	if len(rec.Pictures) > 0 {
		return rec.Pictures[0]
	}
	return nil
}
