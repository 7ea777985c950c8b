package flacmeta

import "fmt"

// Stage names a stage of the parse pipeline.
type Stage string

// Parse stages.
const (
	StageSignature  Stage = "signature check"
	StageWalk       Stage = "header walk"
	StageStreamInfo Stage = "stream-parameters block"
	StageTags       Stage = "tags block"
	StagePicture    Stage = "picture block"
)

// A StageError reports the failure of a parse stage. The underlying error is
// usually a *meta.FormatError, whose offset is relative to the start of the
// file.
type StageError struct {
	// Path of the FLAC file; empty for streams.
	Path string
	// Failing stage.
	Stage Stage
	// Underlying error.
	Err error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("flacmeta: %s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("flacmeta: %s: %s failed: %v", e.Path, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// A Diagnostic records a malformed metadata block which was skipped.
type Diagnostic struct {
	// Stage which decoded the block.
	Stage Stage
	// Decoding error.
	Err error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s skipped: %v", d.Stage, d.Err)
}
