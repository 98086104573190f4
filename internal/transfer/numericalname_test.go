package transfer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/metamover/internal/exifdata"
	"github.com/user/metamover/internal/filehandler"
	"github.com/user/metamover/internal/transfer"
)

func TestCreateNumericalFileNameReturnsUnchangedWhenNoCollision(t *testing.T) {
	dir := t.TempDir()
	got := transfer.CreateNumericalFileName("a.jpg", dir, nil, false)
	if got != "a.jpg" {
		t.Errorf("got %q, want unchanged a.jpg", got)
	}
}

func TestCreateNumericalFileNameAllocatesLowestFreeIndex(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "a_Copy00.jpg", "a_Copy01.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	got := transfer.CreateNumericalFileName("a.jpg", dir, nil, false)
	if got != "a_Copy02.jpg" {
		t.Errorf("got %q, want a_Copy02.jpg", got)
	}
}

func TestCreateNumericalFileNameStripsExistingCopySuffix(t *testing.T) {
	dir := t.TempDir()
	got := transfer.CreateNumericalFileName("a_Copy07.jpg", dir, nil, true)
	if got != "a_Copy00.jpg" {
		t.Errorf("got %q, want a_Copy00.jpg (existing suffix stripped before reassignment)", got)
	}
}

func TestCreateNumericalFileNameConsidersQueuedHandlers(t *testing.T) {
	dir := t.TempDir()
	srcDir := t.TempDir()

	path := filepath.Join(srcDir, "a_Copy00.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	queuedHandler := filehandler.New(filehandler.KindPhoto, path)
	queuedHandler.Photo.Exif = exifdata.Record{}

	got := transfer.CreateNumericalFileName("a.jpg", dir, []*filehandler.Handler{queuedHandler}, true)
	if got != "a_Copy01.jpg" {
		t.Errorf("got %q, want a_Copy01.jpg (index 00 taken by a queued handler)", got)
	}
}

func TestCreateNumericalFileNameForceSuffixWithoutCollision(t *testing.T) {
	dir := t.TempDir()
	got := transfer.CreateNumericalFileName("a.jpg", dir, nil, true)
	if got != "a_Copy00.jpg" {
		t.Errorf("got %q, want a_Copy00.jpg even absent a collision, since forceSuffix was set", got)
	}
}
