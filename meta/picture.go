package meta

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// A Picture metadata block is for storing pictures associated with the file,
// most commonly cover art from CDs. There may be more than one Picture block in
// a file.
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_picture
type Picture struct {
	// The picture type according to the ID3v2 APIC frame. Values outside of
	// 0-20 are kept as is; see PictureType.IsValid.
	Type PictureType
	// The MIME type string, in printable ASCII characters 0x20-0x7E; always of
	// the form "type/subtype".
	MIME string
	// File extension of the picture; the subtype part of MIME.
	Ext string
	// The description of the picture, in UTF-8.
	Desc string
	// The width of the picture in pixels.
	Width uint32
	// The height of the picture in pixels.
	Height uint32
	// The color depth of the picture in bits-per-pixel.
	Depth uint32
	// For indexed-color pictures (e.g. GIF), the number of colors used, or 0 for
	// non-indexed pictures.
	NPalColors uint32
	// The binary picture data.
	Data []byte
}

// ParsePicture decodes the body of a Picture metadata block. The picture type
// is advisory; unknown types are not an error.
//
// Picture format (pseudo code):
//
//	type METADATA_BLOCK_PICTURE struct {
//	   type          uint32
//	   mime_length   uint32
//	   mime_string   [mime_length]byte
//	   desc_length   uint32
//	   desc_string   [desc_length]byte
//	   width         uint32
//	   height        uint32
//	   depth         uint32
//	   n_pal_colors  uint32
//	   data_length   uint32
//	   data          [data_length]byte
//	}
//
// ParsePicture fails with a FormatError of kind InvalidPicture if a length runs
// past the end of the block, or the MIME type is not a printable ASCII
// "type/subtype" string.
func ParsePicture(body []byte) (*Picture, error) {
	r := newReader(body, InvalidPicture)
	pic := new(Picture)

	// 32 bits: Type.
	x, err := r.readUint32BE("picture type")
	if err != nil {
		return nil, err
	}
	pic.Type = PictureType(x)

	// 32 bits: (MIME type length).
	mimeLen, err := r.readUint32BE("MIME type length")
	if err != nil {
		return nil, err
	}
	// (MIME type length) bytes: MIME.
	start := int64(r.pos)
	buf, err := r.readBytes(uint64(mimeLen), "MIME type")
	if err != nil {
		return nil, err
	}
	for _, c := range buf {
		if c < 0x20 || c > 0x7E {
			return nil, errorf(InvalidPicture, start, "invalid character in MIME type; expected >= 0x20 and <= 0x7E, got 0x%02X", c)
		}
	}
	pic.MIME = string(buf)
	pos := strings.LastIndexByte(pic.MIME, '/')
	if pos == -1 {
		return nil, errorf(InvalidPicture, start, "invalid MIME type %q; no '/' present", pic.MIME)
	}
	pic.Ext = pic.MIME[pos+1:]

	// 32 bits: (description length).
	descLen, err := r.readUint32BE("description length")
	if err != nil {
		return nil, err
	}
	// (description length) bytes: Desc.
	if pic.Desc, err = r.readUTF8(uint64(descLen), "description"); err != nil {
		return nil, err
	}

	// 32 bits: Width.
	if pic.Width, err = r.readUint32BE("width"); err != nil {
		return nil, err
	}
	// 32 bits: Height.
	if pic.Height, err = r.readUint32BE("height"); err != nil {
		return nil, err
	}
	// 32 bits: Depth.
	if pic.Depth, err = r.readUint32BE("color depth"); err != nil {
		return nil, err
	}
	// 32 bits: NPalColors.
	if pic.NPalColors, err = r.readUint32BE("palette color count"); err != nil {
		return nil, err
	}

	// 32 bits: (data length).
	dataLen, err := r.readUint32BE("data length")
	if err != nil {
		return nil, err
	}
	// (data length) bytes: Data.
	data, err := r.readBytes(uint64(dataLen), "picture data")
	if err != nil {
		return nil, err
	}
	pic.Data = append([]byte(nil), data...)

	return pic, nil
}

// SniffMIME detects the content type of the picture data from its leading
// bytes. It may differ from the declared MIME type of broken taggers.
func (pic *Picture) SniffMIME() string {
	return mimetype.Detect(pic.Data).String()
}

// PictureType specifies the content of a picture, according to the ID3v2 APIC
// frame.
type PictureType uint32

// Picture types. There may only be one each of picture type 1 and 2 in a file.
const (
	PictureOther             PictureType = iota // Other
	PictureFileIcon                             // 32x32 pixels 'file icon' (PNG only)
	PictureOtherFileIcon                        // Other file icon
	PictureFrontCover                           // Cover (front)
	PictureBackCover                            // Cover (back)
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (e.g. label side of CD)
	PictureLeadArtist                           // Lead artist/lead performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/Orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording Location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureScreenCapture                        // Movie/video screen capture
	PictureFish                                 // A bright coloured fish
	PictureIllustration                         // Illustration
	PictureBandLogo                             // Band/artist logotype
	PicturePublisherLogo                        // Publisher/Studio logotype
)

// pictureTypeName specifies the name of each picture type.
var pictureTypeName = [...]string{
	PictureOther:             "other",
	PictureFileIcon:          "file icon",
	PictureOtherFileIcon:     "other file icon",
	PictureFrontCover:        "cover (front)",
	PictureBackCover:         "cover (back)",
	PictureLeaflet:           "leaflet page",
	PictureMedia:             "media",
	PictureLeadArtist:        "lead artist/lead performer/soloist",
	PictureArtist:            "artist/performer",
	PictureConductor:         "conductor",
	PictureBand:              "band/orchestra",
	PictureComposer:          "composer",
	PictureLyricist:          "lyricist/text writer",
	PictureRecordingLocation: "recording location",
	PictureDuringRecording:   "during recording",
	PictureDuringPerformance: "during performance",
	PictureScreenCapture:     "movie/video screen capture",
	PictureFish:              "a bright coloured fish",
	PictureIllustration:      "illustration",
	PictureBandLogo:          "band/artist logotype",
	PicturePublisherLogo:     "publisher/studio logotype",
}

// IsValid reports whether t is one of the 21 defined picture types.
func (t PictureType) IsValid() bool {
	return t <= PicturePublisherLogo
}

func (t PictureType) String() string {
	if t.IsValid() {
		return pictureTypeName[t]
	}
	return fmt.Sprintf("unknown (%d)", uint32(t))
}
