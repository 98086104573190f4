package filehandler_test

import (
	"testing"

	"github.com/user/metamover/internal/filehandler"
)

func TestSetTargetFileNameDefaultsToSourceName(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/vacation.jpg")
	if h.TargetFileName != "vacation.jpg" {
		t.Errorf("expected target filename to default to source filename, got %q", h.TargetFileName)
	}
}

func TestSetTargetFileNameAppendsMissingExtension(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/vacation.jpg")
	h.SetTargetFileName("renamed")
	if h.TargetFileName != "renamed.jpg" {
		t.Errorf("expected extension to be appended, got %q", h.TargetFileName)
	}
}

func TestSetTargetFileNameReplacesMismatchedExtension(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/vacation.jpg")
	h.SetTargetFileName("renamed.png")
	if h.TargetFileName != "renamed.jpg" {
		t.Errorf("expected mismatched extension to be replaced, got %q", h.TargetFileName)
	}
}

func TestSetTargetFileNameNoDirectoryKeepsBareName(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/vacation.jpg")
	h.SetTargetFileName("renamed.jpg")
	if h.TargetFileName != "renamed.jpg" {
		t.Errorf("expected bare filename, got %q", h.TargetFileName)
	}
}

func TestSetTargetFileNameKeepsSuppliedDirectory(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/vacation.jpg")
	h.SetTargetFileName("/out/2024/renamed.jpg")
	if h.TargetFileName != "/out/2024/renamed.jpg" {
		t.Errorf("expected directory component to be preserved, got %q", h.TargetFileName)
	}
}

func TestNewPhotoHasAttributes(t *testing.T) {
	h := filehandler.New(filehandler.KindPhoto, "/src/img.jpg")
	if h.Photo == nil {
		t.Fatalf("expected Photo attributes to be allocated for KindPhoto")
	}
}

func TestNewBasicHasNoPhotoAttributes(t *testing.T) {
	h := filehandler.New(filehandler.KindBasic, "/src/readme.txt")
	if h.Photo != nil {
		t.Fatalf("expected no Photo attributes for KindBasic")
	}
}
