// Package flacmeta extracts the metadata of FLAC (Free Lossless Audio Codec)
// files [1], without decoding any audio samples.
//
// The basic structure of a FLAC bitstream is:
//   - The four byte string signature "fLaC".
//   - The StreamInfo metadata block.
//   - Zero or more other metadata blocks.
//   - One or more audio frames.
//
// A parse is a pipeline of pure stages over a single in-memory copy of the
// file: check the signature, walk the metadata block headers, decode the
// StreamInfo, VorbisComment and Picture blocks, and optionally scan for frame
// headers. The result is a Record, which is never modified after Parse
// returns.
//
// [1]: https://www.xiph.org/flac/format.html
package flacmeta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mewkiz/flacmeta/frame"
	"github.com/mewkiz/flacmeta/meta"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// signature is present at the beginning of each FLAC file.
const signature = "fLaC"

// checkSignature verifies that buf starts with the FLAC signature.
func checkSignature(buf []byte) error {
	if !bytes.HasPrefix(buf, []byte(signature)) {
		got := buf[:min(len(buf), len(signature))]
		return &meta.FormatError{
			Kind:   meta.NotThisContainer,
			Offset: 0,
			Msg:    fmt.Sprintf("invalid signature; expected %q, got %q", signature, got),
		}
	}
	return nil
}

// ParseFile reads the provided file and returns its metadata.
func ParseFile(path string, opts ...Option) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", path)
	}
	return parse(path, buf, newConfig(opts))
}

// Parse reads the FLAC stream of r until EOF and returns its metadata.
func Parse(r io.Reader, opts ...Option) (*Record, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return parse("", buf, newConfig(opts))
}

// ParseBytes returns the metadata of the FLAC stream held in buf. Pictures of
// the returned Record do not alias buf.
func ParseBytes(buf []byte, opts ...Option) (*Record, error) {
	return parse("", buf, newConfig(opts))
}

// ParseMany parses the provided files concurrently, using up to
// runtime.NumCPU() goroutines. Records are returned in the order of paths.
//
// The first failure cancels the files not yet started, and is returned.
func ParseMany(ctx context.Context, paths []string, opts ...Option) ([]*Record, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	recs := make([]*Record, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}
			rec, err := ParseFile(path, opts...)
			if err != nil {
				return err
			}
			recs[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}

// parse runs the parse pipeline on the contents of a FLAC file.
func parse(path string, buf []byte, cfg *config) (*Record, error) {
	fail := func(stage Stage, err error) (*Record, error) {
		return nil, &StageError{Path: path, Stage: stage, Err: err}
	}

	if err := checkSignature(buf); err != nil {
		return fail(StageSignature, err)
	}
	locs, err := meta.Walk(buf)
	if err != nil {
		return fail(StageWalk, err)
	}
	rec := &Record{
		Path:   path,
		Size:   int64(len(buf)),
		Blocks: locs.Blocks,
	}

	// The stream parameters are required by frame scanning and rendering; a
	// failure always aborts.
	if locs.StreamInfo == nil {
		return fail(StageStreamInfo, &meta.FormatError{
			Kind:   meta.InvalidStreamParameters,
			Offset: signatureLen,
			Msg:    "no StreamInfo metadata block present",
		})
	}
	rec.Info, err = meta.ParseStreamInfo(locs.StreamInfo.Body(buf))
	if err != nil {
		return fail(StageStreamInfo, absolute(err, *locs.StreamInfo))
	}

	// report records a per-block failure as a diagnostic, or returns it in
	// strict mode.
	report := func(stage Stage, err error) error {
		if cfg.strict {
			return &StageError{Path: path, Stage: stage, Err: err}
		}
		d := Diagnostic{Stage: stage, Err: err}
		cfg.logger.Printf("flacmeta: %s: %v", displayPath(path), d)
		rec.Diagnostics = append(rec.Diagnostics, d)
		return nil
	}

	if loc := locs.VorbisComment; loc != nil {
		vc, err := meta.ParseVorbisComment(loc.Body(buf))
		if err != nil {
			if err := report(StageTags, absolute(err, *loc)); err != nil {
				return nil, err
			}
		} else {
			rec.Tags = vc
		}
	}

	for _, loc := range locs.Pictures {
		pic, err := meta.ParsePicture(loc.Body(buf))
		if err != nil {
			if err := report(StagePicture, absolute(err, loc)); err != nil {
				return nil, err
			}
			continue
		}
		rec.Pictures = append(rec.Pictures, pic)
	}

	if cfg.frames {
		rec.Frames = frame.Scan(buf, locs.AudioOffset, rec.Info)
		cfg.logger.Printf("flacmeta: %s: located %d frame headers", displayPath(path), len(rec.Frames))
	}
	return rec, nil
}

// signatureLen is the size in bytes of the FLAC signature.
const signatureLen = int64(len(signature))

// absolute translates the offset of a block decoder error, which is relative
// to the block body, to an offset within the file.
func absolute(err error, loc meta.Location) error {
	fe, ok := err.(*meta.FormatError)
	if !ok {
		return err
	}
	abs := *fe
	abs.Offset += loc.Start
	return &abs
}

// displayPath returns the path used in messages about the given file.
func displayPath(path string) string {
	if path == "" {
		return "<stream>"
	}
	return path
}
