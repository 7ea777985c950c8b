package flacmeta_test

import (
	"bytes"
	"testing"

	"github.com/dhowden/tag"
	"github.com/mewkiz/flacmeta"
	"github.com/mewkiz/flacmeta/internal/flactest"
	"github.com/mewkiz/flacmeta/meta"
)

// TestCrossCheck compares the tags and pictures decoded by flacmeta with those
// decoded by an independent tag reader.
func TestCrossCheck(t *testing.T) {
	buf := flactest.File(nil,
		streamInfoBlock(cdInfo),
		flactest.Block{Type: meta.TypeVorbisComment, Body: flactest.EncodeVorbisComment("reference libFLAC 1.3.2 20170101", "TITLE=My=Song", "ARTIST=Eve", "ALBUM=Keys", "DATE=2012")},
		flactest.Block{Type: meta.TypePicture, Body: flactest.EncodePicture(cover)},
	)
	rec, err := flacmeta.ParseBytes(buf)
	if err != nil {
		t.Fatal(err)
	}
	m, err := tag.ReadFrom(bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if m.FileType() != tag.FLAC {
		t.Errorf("file type mismatch; expected %v, got %v", tag.FLAC, m.FileType())
	}
	golden := []struct {
		name string
		want string
	}{
		{name: "title", want: m.Title()},
		{name: "artist", want: m.Artist()},
		{name: "album", want: m.Album()},
	}
	for _, g := range golden {
		got := rec.Tag(g.name)
		if len(got) != 1 || got[0] != g.want {
			t.Errorf("%s mismatch; expected %q, got %q", g.name, g.want, got)
		}
	}
	if got, want := rec.Info.SampleRate, uint32(44100); got != want {
		t.Errorf("sample rate mismatch; expected %d, got %d", want, got)
	}

	pic := m.Picture()
	if pic == nil {
		t.Fatal("missing picture")
	}
	got := rec.CoverArt()
	if got.MIME != pic.MIMEType || got.Desc != pic.Description || !bytes.Equal(got.Data, pic.Data) {
		t.Errorf("picture mismatch; expected %v, got %q %q (%d bytes)", pic, got.MIME, got.Desc, len(got.Data))
	}
}
