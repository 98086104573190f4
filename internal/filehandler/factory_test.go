package filehandler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/metamover/internal/filehandler"
)

func TestMakeClassifiesByExtension(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		kind filehandler.Kind
	}{
		{"clip.mp4", filehandler.KindVideo},
		{"notes.txt", filehandler.KindBasic},
		{"noext", filehandler.KindBasic},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		h := filehandler.Make(path)
		if h.Kind != tc.kind {
			t.Errorf("Make(%s): got kind %v, want %v", tc.name, h.Kind, tc.kind)
		}
	}
}

func TestMakePhotoWithoutExifIsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	h := filehandler.Make(path)
	if h.Kind != filehandler.KindPhoto {
		t.Fatalf("expected KindPhoto for .jpg extension, got %v", h.Kind)
	}
	if h.Photo.ContainsExifData {
		t.Errorf("expected ContainsExifData=false for a non-EXIF buffer")
	}
	if h.Photo.ValidCreationDateInExif {
		t.Errorf("expected ValidCreationDateInExif=false without EXIF data")
	}
}

func TestMakeCaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CLIP.MP4")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := filehandler.Make(path)
	if h.Kind != filehandler.KindVideo {
		t.Errorf("expected case-insensitive match to classify as video, got %v", h.Kind)
	}
}
