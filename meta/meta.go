// Package meta implements access to FLAC metadata blocks.
//
// A brief introduction of the FLAC metadata format [1] follows. FLAC metadata
// is stored in blocks; each block contains a header followed by a body. The
// block header describes the type of the block body, its length in bytes, and
// specifies if the block was the last metadata block in a FLAC stream. The
// contents of the block body depends on the type specified in the block header.
//
// This package decodes three block types:
//   - StreamInfo [2]
//   - VorbisComment [3]
//   - Picture [4]
//
// All other block types are located by Walk and skipped.
//
//	[1]: https://www.xiph.org/flac/format.html#format_overview
//	[2]: https://www.xiph.org/flac/format.html#metadata_block_streaminfo
//	[3]: https://www.xiph.org/flac/format.html#metadata_block_vorbis_comment
//	[4]: https://www.xiph.org/flac/format.html#metadata_block_picture
package meta

import "fmt"

// Type represents the type of a metadata block body.
type Type uint8

// Metadata block body types.
//
//	0:     StreamInfo
//	1:     Padding
//	2:     Application
//	3:     SeekTable
//	4:     VorbisComment
//	5:     CueSheet
//	6:     Picture
//	7-126: reserved
//	127:   invalid, to avoid confusion with a frame sync code
const (
	TypeStreamInfo    Type = 0
	TypePadding       Type = 1
	TypeApplication   Type = 2
	TypeSeekTable     Type = 3
	TypeVorbisComment Type = 4
	TypeCueSheet      Type = 5
	TypePicture       Type = 6
	TypeInvalid       Type = 127
)

// typeName maps from metadata block type to name.
var typeName = map[Type]string{
	TypeStreamInfo:    "stream info",
	TypePadding:       "padding",
	TypeApplication:   "application",
	TypeSeekTable:     "seek table",
	TypeVorbisComment: "vorbis comment",
	TypeCueSheet:      "cue sheet",
	TypePicture:       "picture",
	TypeInvalid:       "invalid",
}

func (t Type) String() string {
	if s, ok := typeName[t]; ok {
		return s
	}
	return fmt.Sprintf("reserved (%d)", uint8(t))
}

// A Header contains information about the type and length of a metadata block.
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_header
type Header struct {
	// IsLast specifies if the block is the last metadata block.
	IsLast bool
	// Metadata block body type.
	Type Type
	// Length of body data in bytes.
	Length int64
}

// headerLen is the size in bytes of a metadata block header.
const headerLen = 4

// ParseHeader decodes a metadata block header. Any 4 bytes form a
// structurally valid header; whether the length fits the stream is for the
// caller to decide.
//
// Block header format (pseudo code):
//
//	type METADATA_BLOCK_HEADER struct {
//	   is_last    bool
//	   block_type uint7
//	   length     uint24
//	}
func ParseHeader(buf [headerLen]byte) Header {
	return Header{
		// 1 bit: IsLast.
		IsLast: buf[0]&0x80 != 0,
		// 7 bits: Type.
		Type: Type(buf[0] & 0x7F),
		// 24 bits: Length; big-endian.
		Length: int64(buf[1])<<16 | int64(buf[2])<<8 | int64(buf[3]),
	}
}
