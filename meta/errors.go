package meta

import "fmt"

// Kind classifies a structural violation of a FLAC stream.
type Kind uint8

// Error kinds.
const (
	// NotThisContainer: the stream does not start with the "fLaC" signature.
	NotThisContainer Kind = iota + 1
	// Truncated: a declared block size runs past the available bytes.
	Truncated
	// InvalidStreamParameters: malformed StreamInfo block.
	InvalidStreamParameters
	// InvalidTag: malformed VorbisComment block.
	InvalidTag
	// InvalidPicture: malformed Picture block.
	InvalidPicture
)

// kindName maps from error kind to name.
var kindName = map[Kind]string{
	NotThisContainer:        "not a FLAC stream",
	Truncated:               "truncated stream",
	InvalidStreamParameters: "invalid stream parameters",
	InvalidTag:              "invalid tag",
	InvalidPicture:          "invalid picture",
}

func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return fmt.Sprintf("<unknown error kind %d>", uint8(k))
}

// A FormatError reports a structural violation found while decoding a FLAC
// stream.
type FormatError struct {
	// Error kind.
	Kind Kind
	// Byte offset of the offending field. It is relative to the start of the
	// file for the signature and block walk, and relative to the start of the
	// block body for block decoders.
	Offset int64
	// Description of the violation.
	Msg string
}

// Errors which may be used with errors.Is to match the kind of a FormatError.
var (
	ErrNotThisContainer        = &FormatError{Kind: NotThisContainer}
	ErrTruncated               = &FormatError{Kind: Truncated}
	ErrInvalidStreamParameters = &FormatError{Kind: InvalidStreamParameters}
	ErrInvalidTag              = &FormatError{Kind: InvalidTag}
	ErrInvalidPicture          = &FormatError{Kind: InvalidPicture}
)

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Is reports whether target is a FormatError of the same kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// errorf returns a new FormatError of the given kind.
func errorf(kind Kind, offset int64, format string, a ...interface{}) *FormatError {
	return &FormatError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, a...)}
}
