// Package reporting writes the end-of-run summary text file: the scan
// bucket counts plus how many files the EXIF/filename duplicate policy
// caught.
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
)

// Summary holds the counters a run report is built from.
type Summary struct {
	FilesFound            int
	ValidPhotosFound       int
	UnsupportedPhotosFound int
	VideosFound            int
	DuplicatesFound        int
}

// Write renders summary as a plain-text report at path, creating parent
// directories as needed: a header followed by a summary counters block,
// with no per-file detail.
func Write(path string, summary Summary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("reporting: create directory %s: %w", dir, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reporting: create report %s: %w", path, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Photo Sorting Report\n")
	fmt.Fprintf(file, "====================\n\n")
	fmt.Fprintf(file, "Summary:\n")
	fmt.Fprintf(file, "  - Total files scanned: %d\n", summary.FilesFound)
	fmt.Fprintf(file, "  - Valid photos found: %d\n", summary.ValidPhotosFound)
	fmt.Fprintf(file, "  - Unsupported photos found (missing or invalid EXIF): %d\n", summary.UnsupportedPhotosFound)
	fmt.Fprintf(file, "  - Videos found: %d\n", summary.VideosFound)
	fmt.Fprintf(file, "  - Duplicates detected: %d\n", summary.DuplicatesFound)

	return nil
}
