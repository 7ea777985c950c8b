package meta

import "strings"

// A VorbisComment metadata block is for storing a list of human-readable
// name/value pairs. Values are encoded using UTF-8. It is an implementation of
// the Vorbis comment specification (without the framing bit). This is the only
// officially supported tagging mechanism in FLAC. In some external
// documentation, Vorbis comments are called FLAC tags to lessen confusion.
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_vorbis_comment
type VorbisComment struct {
	// Vendor name of the encoder.
	Vendor string
	// Tags, as name to value set.
	Tags *TagSet
}

// ParseVorbisComment decodes the body of a VorbisComment metadata block.
//
// Unlike the rest of FLAC, the lengths of a Vorbis comment are stored in
// little-endian.
//
// Vorbis comment format (pseudo code):
//
//	type METADATA_BLOCK_VORBIS_COMMENT struct {
//	   vendor_length uint32 // little-endian
//	   vendor_string [vendor_length]byte
//	   comment_count uint32 // little-endian
//	   comments      [comment_count]comment
//	}
//
//	type comment struct {
//	   vector_length uint32 // little-endian
//	   // vector_string is a name/value pair. Example: "NAME=value".
//	   vector_string [vector_length]byte
//	}
//
// ParseVorbisComment fails with a FormatError of kind InvalidTag if a length
// runs past the end of the block, a string is not valid UTF-8, or a comment
// vector has no name before its first '='.
func ParseVorbisComment(body []byte) (*VorbisComment, error) {
	r := newReader(body, InvalidTag)

	// 32 bits: vendor length.
	vendorLen, err := r.readUint32LE("vendor length")
	if err != nil {
		return nil, err
	}
	// (vendor length) bytes: vendor.
	vendor, err := r.readUTF8(uint64(vendorLen), "vendor string")
	if err != nil {
		return nil, err
	}
	vc := &VorbisComment{Vendor: vendor, Tags: NewTagSet()}

	// 32 bits: number of tags.
	n, err := r.readUint32LE("comment count")
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		// 32 bits: vector length.
		vectorLen, err := r.readUint32LE("comment length")
		if err != nil {
			return nil, err
		}
		// (vector length) bytes: vector.
		start := int64(r.pos)
		vector, err := r.readUTF8(uint64(vectorLen), "comment")
		if err != nil {
			return nil, err
		}
		name, value, verr := splitVector(vector)
		if verr != nil {
			verr.Offset = start
			return nil, verr
		}
		vc.Tags.Add(name, value)
	}
	return vc, nil
}

// splitVector splits a comment vector on its first '=' into name and value.
// The name must be non-empty; the value may be empty or contain further '='.
func splitVector(vector string) (name, value string, err *FormatError) {
	pos := strings.IndexByte(vector, '=')
	switch {
	case pos == -1:
		return "", "", errorf(InvalidTag, 0, "invalid comment vector; no '=' present in: %q", vector)
	case pos == 0:
		return "", "", errorf(InvalidTag, 0, "invalid comment vector; empty name in: %q", vector)
	}
	return vector[:pos], vector[pos+1:], nil
}
