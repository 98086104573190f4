package settings

import (
	"fmt"
	"os"
)

// ErrConfigurationInvalid is wrapped with the offending field name when a
// required directory is missing.
type ErrConfigurationInvalid struct {
	Field string
}

func (e *ErrConfigurationInvalid) Error() string {
	return fmt.Sprintf("settings: %s directory does not exist", e.Field)
}

// ScanConfigurationValid succeeds iff SourceDirectory is a non-empty,
// extant directory.
func (s Settings) ScanConfigurationValid() error {
	if !directoryExists(s.SourceDirectory) {
		return &ErrConfigurationInvalid{Field: "Source"}
	}
	return nil
}

// CopyConfigurationValid succeeds iff every directory the selected options
// depend on actually exists.
func (s Settings) CopyConfigurationValid() error {
	if s.MoveInvalidFileMeta && !directoryExists(s.InvalidFileMetaDirectory) {
		return &ErrConfigurationInvalid{Field: "Invalid File Meta"}
	}
	if s.DuplicatesFoundSelection == DuplicatesMoveToFolder && !directoryExists(s.DuplicatesDirectory) {
		return &ErrConfigurationInvalid{Field: "Duplicates"}
	}
	return nil
}

func directoryExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
