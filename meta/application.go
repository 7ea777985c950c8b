package meta

import "fmt"

// registeredApplications maps from a registered application ID to a
// description.
//
// ref: http://flac.sourceforge.net/id.html
var registeredApplications = map[ID]string{
	"ATCH": "FlacFile",
	"BSOL": "beSolo",
	"BUGS": "Bugs Player",
	"Cues": "GoldWave cue points (specification)",
	"Fica": "CUE Splitter",
	"Ftol": "flac-tools",
	"MOTB": "MOTB MetaCzar",
	"MPSE": "MP3 Stream Editor",
	"MuML": "MusicML: Music Metadata Language",
	"RIFF": "Sound Devices RIFF chunk storage",
	"SFFL": "Sound Font FLAC",
	"SONY": "Sony Creative Software",
	"SQEZ": "flacsqueeze",
	"TtWv": "TwistedWave",
	"UITS": "UITS Embedding tools",
	"aiff": "FLAC AIFF chunk storage",
	"imag": "flac-image application for storing arbitrary files in APPLICATION metadata blocks",
	"peem": "Parseable Embedded Extensible Metadata (specification)",
	"qfst": "QFLAC Studio",
	"riff": "FLAC RIFF chunk storage",
	"tune": "TagTuner",
	"xbat": "XBAT",
	"xmcd": "xmcd",
}

// An ID is a 4 byte identifier of a registered application.
type ID string

func (id ID) String() string {
	s, ok := registeredApplications[id]
	if ok {
		return s
	}
	return fmt.Sprintf("<unregistered ID: %q>", string(id))
}

// An Application metadata block is used by third-party applications. The only
// mandatory field is a 32-bit identifier. This ID is granted upon request to an
// application by the FLAC maintainers. The remainder of the block is defined by
// the registered application, and is not decoded.
type Application struct {
	// Registered application ID.
	ID ID
	// Length of the application data in bytes.
	DataLen int
}

// ParseApplication decodes the body of an Application metadata block.
// Unregistered IDs are kept; ID.String reports them as such.
//
// Application format (pseudo code):
//
//	type METADATA_BLOCK_APPLICATION struct {
//	   ID   uint32
//	   Data [header.Length-4]byte
//	}
//
// ref: https://www.xiph.org/flac/format.html#metadata_block_application
func ParseApplication(body []byte) (*Application, error) {
	r := newReader(body, Truncated)
	// 32 bits: ID.
	buf, err := r.readBytes(4, "application ID")
	if err != nil {
		return nil, err
	}
	app := &Application{
		ID:      ID(buf),
		DataLen: r.remaining(),
	}
	return app, nil
}

// IsRegistered reports whether id has been granted by the FLAC maintainers.
func (id ID) IsRegistered() bool {
	_, ok := registeredApplications[id]
	return ok
}
