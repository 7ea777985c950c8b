package flacmeta

import (
	"io"
	"log"
)

// An Option configures a parse.
type Option func(*config)

// config holds the parse configuration.
type config struct {
	// Scan the audio data for frame headers.
	frames bool
	// Fail on the first per-block error.
	strict bool
	// Logger for non-fatal notices.
	logger *log.Logger
}

// newConfig returns the configuration of the provided options.
func newConfig(opts []Option) *config {
	cfg := &config{
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFrames enables the frame header scan. The frame positions located are
// approximate; see frame.Scanner.
func WithFrames() Option {
	return func(cfg *config) {
		cfg.frames = true
	}
}

// WithStrict turns the first malformed VorbisComment or Picture block into a
// parse failure, instead of a Diagnostic of the Record.
func WithStrict() Option {
	return func(cfg *config) {
		cfg.strict = true
	}
}

// WithLogger logs non-fatal notices, such as diagnostics, to logger. By
// default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
