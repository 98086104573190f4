package transfer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/metamover/internal/filehandler"
	"github.com/user/metamover/internal/transfer"
)

func makePlannedPhoto(t *testing.T, when time.Time, cameraModel string) *filehandler.Handler {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := filehandler.New(filehandler.KindPhoto, path)
	h.Photo.OriginalDateTime = when
	h.Photo.CameraModel = cameraModel
	return h
}

func TestGenerateDirectoryPathYearMonthDay(t *testing.T) {
	h := makePlannedPhoto(t, time.Date(2021, time.March, 5, 0, 0, 0, 0, time.Local), "")
	got := transfer.GenerateDirectoryPath(h, "/out", "Year, Month, Day")
	want := filepath.Join("/out", "2021", "March", "5")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateDirectoryPathAcceptsBothCameraModelSpellings(t *testing.T) {
	h := makePlannedPhoto(t, time.Date(2021, time.March, 5, 0, 0, 0, 0, time.Local), "X100")

	withSpace := transfer.GenerateDirectoryPath(h, "/out", "Camera Model, Year")
	withoutSpace := transfer.GenerateDirectoryPath(h, "/out", "CameraModel, Year")

	want := filepath.Join("/out", "X100", "2021")
	if withSpace != want {
		t.Errorf("\"Camera Model\": got %q, want %q", withSpace, want)
	}
	if withoutSpace != want {
		t.Errorf("\"CameraModel\": got %q, want %q", withoutSpace, want)
	}
}

func TestGenerateDirectoryPathUnknownWhenDateMissing(t *testing.T) {
	h := makePlannedPhoto(t, time.Time{}, "")
	got := transfer.GenerateDirectoryPath(h, "/out", "Year")
	want := filepath.Join("/out", "Unknown")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
