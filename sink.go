package flacmeta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mewkiz/flacmeta/meta"
	"github.com/mewkiz/pkg/errutil"
	"github.com/mewkiz/pkg/osutil"
)

// A PictureSink persists embedded pictures.
type PictureSink interface {
	// WritePicture stores the index:th picture of a file, counting from 0.
	WritePicture(index int, pic *meta.Picture) error
}

// ExportPictures hands every picture of the record to sink, in file order.
func (rec *Record) ExportPictures(sink PictureSink) error {
	for i, pic := range rec.Pictures {
		if err := sink.WritePicture(i, pic); err != nil {
			return err
		}
	}
	return nil
}

// DirSink stores pictures as files of a directory, named "pic<index>.<ext>"
// after the MIME subtype of the picture; e.g. "pic0.png".
type DirSink struct {
	// Output directory; created if not present.
	Dir string
	// Force overwrite of existing files.
	Force bool
}

// WritePicture stores the picture in the output directory.
func (sink DirSink) WritePicture(index int, pic *meta.Picture) error {
	if err := os.MkdirAll(sink.Dir, 0o755); err != nil {
		return errutil.Err(err)
	}
	path := filepath.Join(sink.Dir, PictureName(index, pic))
	if !sink.Force && osutil.Exists(path) {
		return fmt.Errorf("the file %q exists already; use Force to overwrite", path)
	}
	if err := os.WriteFile(path, pic.Data, 0o644); err != nil {
		return errutil.Err(err)
	}
	return nil
}

// PictureName returns the file name of the index:th picture of a file.
func PictureName(index int, pic *meta.Picture) string {
	ext := pic.Ext
	if ext == "" || ext == "." || ext == ".." || filepath.Base(ext) != ext {
		ext = "bin"
	}
	return fmt.Sprintf("pic%d.%s", index, ext)
}
