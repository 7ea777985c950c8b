// flacmeta is a tool which reports the metadata of FLAC files.
//
// Usage:
//
//	flacmeta [OPTION]... FILE...
//
// By default a short report of the stream parameters, tags and pictures of
// each file is printed. The -list flag lists every metadata block in the
// format of metaflac --list.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/kylelemons/godebug/pretty"
	"github.com/mewkiz/flacmeta"
	"github.com/mewkiz/flacmeta/meta"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
)

var (
	// flagList specifies if all metadata blocks should be listed.
	flagList bool
	// flagFrames specifies if frame headers should be located and printed.
	flagFrames bool
	// flagPictures specifies if embedded pictures should be exported.
	flagPictures bool
	// flagOutput specifies the output directory of exported pictures.
	flagOutput string
	// flagForce specifies if file overwriting should be forced, when a picture
	// of the same name already exists.
	flagForce bool
	// flagStrict specifies if malformed tag and picture blocks should fail the
	// parse.
	flagStrict bool
	// flagDump specifies if the parsed record should be pretty printed.
	flagDump bool
	// flagVerbose specifies if skipped blocks should be logged.
	flagVerbose bool
)

func init() {
	flag.BoolVar(&flagList, "list", false, "List all metadata blocks.")
	flag.BoolVar(&flagFrames, "frames", false, "Locate and print frame headers (approximate).")
	flag.BoolVar(&flagPictures, "pictures", false, "Export embedded pictures.")
	flag.StringVar(&flagOutput, "o", "", "Output directory of exported pictures (default FILE without extension, suffixed by \"_pictures\").")
	flag.BoolVar(&flagForce, "f", false, "Force overwrite.")
	flag.BoolVar(&flagStrict, "strict", false, "Fail on malformed tag and picture blocks.")
	flag.BoolVar(&flagDump, "dump", false, "Pretty print the parsed metadata.")
	flag.BoolVar(&flagVerbose, "v", false, "Log skipped metadata blocks.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: flacmeta [OPTION]... FILE...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("flacmeta: ")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if flagList {
		for _, path := range flag.Args() {
			if err := list(path); err != nil {
				log.Fatalf("%+v", err)
			}
		}
		return
	}
	if err := report(flag.Args()); err != nil {
		log.Fatalf("%+v", err)
	}
}

// report prints the metadata of the provided FLAC files.
func report(paths []string) error {
	var opts []flacmeta.Option
	if flagFrames {
		opts = append(opts, flacmeta.WithFrames())
	}
	if flagStrict {
		opts = append(opts, flacmeta.WithStrict())
	}
	if flagVerbose {
		opts = append(opts, flacmeta.WithLogger(log.Default()))
	}
	recs, err := flacmeta.ParseMany(context.Background(), paths, opts...)
	if err != nil {
		return err
	}
	for i, rec := range recs {
		if len(recs) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", rec.Path)
		}
		if flagDump {
			dump(os.Stdout, rec)
		} else if err := rec.WriteText(os.Stdout); err != nil {
			return errors.WithStack(err)
		}
		if flagFrames {
			listFrames(rec)
		}
		if flagPictures {
			if err := exportPictures(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// exportPictures stores the pictures of rec in the output directory.
func exportPictures(rec *flacmeta.Record) error {
	dir := flagOutput
	if dir == "" {
		dir = pathutil.TrimExt(rec.Path) + "_pictures"
	}
	for i, pic := range rec.Pictures {
		// Broken taggers may declare the wrong MIME type.
		if sniffed := pic.SniffMIME(); sniffed != pic.MIME {
			log.Printf("%s: picture %d declared as %q, detected %q", rec.Path, i, pic.MIME, sniffed)
		}
	}
	sink := flacmeta.DirSink{Dir: dir, Force: flagForce}
	if err := rec.ExportPictures(sink); err != nil {
		return errors.Wrapf(err, "unable to export pictures of %q", rec.Path)
	}
	for i, pic := range rec.Pictures {
		fmt.Printf("wrote %s\n", filepath.Join(dir, flacmeta.PictureName(i, pic)))
	}
	return nil
}

// Example:
//
//	frame #0 at offset 8330: 4096 samples, 44100 Hz, 2 channels, 16 bits
func listFrames(rec *flacmeta.Record) {
	for i, hdr := range rec.Frames {
		fmt.Printf("frame #%d at offset %d: %v, %v, %v, %v\n", i, hdr.Offset, hdr.BlockSize, hdr.SampleRate, hdr.Channels, hdr.BitsPerSample)
	}
}

// dump pretty prints the record and its playback format to w. Picture data is
// cut short.
func dump(w io.Writer, rec *flacmeta.Record) {
	const maxData = 16
	r := *rec
	r.Pictures = make([]*meta.Picture, len(rec.Pictures))
	for i, pic := range rec.Pictures {
		p := *pic
		if len(p.Data) > maxData {
			p.Data = p.Data[:maxData]
		}
		r.Pictures[i] = &p
	}
	// Playback format of the stream, as handed to go-audio consumers.
	var format *audio.Format
	if rec.Info != nil {
		format = rec.Info.Format()
	}
	cfg := &pretty.Config{
		Diffable:       true,
		PrintStringers: true,
	}
	cfg.Fprint(w, struct {
		Record flacmeta.Record
		Format *audio.Format
	}{Record: r, Format: format})
}
