// Package scanner walks a source directory tree, classifying every regular
// file into one of four buckets via filehandler.Make, as a single
// traversal rather than a thread pool of per-file workers.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/user/metamover/internal/filehandler"
)

// ErrInvalidSource is returned by Scan when the given path does not exist
// or is not a directory.
var ErrInvalidSource = errors.New("scanner: source path does not exist or is not a directory")

// Scanner holds the four result buckets (valid photos, invalid photos,
// videos, and everything else) produced by its most recent Scan call, which
// clears them at entry, and exposes cooperative cancellation.
type Scanner struct {
	photoFileHandlers        []*filehandler.Handler
	invalidPhotoFileHandlers []*filehandler.Handler
	videoFileHandlers        []*filehandler.Handler
	basicFileHandlers        []*filehandler.Handler

	filesFound                                  atomic.Int64
	photoFilesFoundContainingExifData           atomic.Int64
	photoFilesFoundContainingValidCreationDate  atomic.Int64
	photoFilesUnsupportedFound                  atomic.Int64

	cancelScan  atomic.Bool
	scanRunning atomic.Bool
}

// New returns a Scanner ready for its first Scan call.
func New() *Scanner {
	return &Scanner{}
}

// Scan walks directoryPath depth-first, dispatching each regular file to
// filehandler.Make and bucketing the result. It blocks until the walk
// completes or CancelScan is observed. A directory-iteration failure is
// fatal to the scan and returned wrapped; per-file failures never are.
func (s *Scanner) Scan(directoryPath string, includeSubdirectories bool) error {
	s.resetLocked()
	s.cancelScan.Store(false)
	s.scanRunning.Store(true)
	defer s.scanRunning.Store(false)

	info, err := os.Stat(directoryPath)
	if err != nil || !info.IsDir() {
		return ErrInvalidSource
	}

	if err := s.scanDirectory(directoryPath, includeSubdirectories); err != nil {
		return fmt.Errorf("scanner: scan failed: %w", err)
	}
	return nil
}

func (s *Scanner) scanDirectory(directoryPath string, includeSubdirectories bool) error {
	entries, err := os.ReadDir(directoryPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		// One cancellation check per loop iteration.
		if s.cancelScan.Load() {
			s.resetLocked()
			return nil
		}

		path := filepath.Join(directoryPath, entry.Name())

		if entry.IsDir() {
			if includeSubdirectories {
				if err := s.scanDirectory(path, true); err != nil {
					return err
				}
			}
			continue
		}

		s.classify(filehandler.Make(path))
	}
	return nil
}

func (s *Scanner) classify(h *filehandler.Handler) {
	switch h.Kind {
	case filehandler.KindVideo:
		s.videoFileHandlers = append(s.videoFileHandlers, h)
		s.filesFound.Add(1)

	case filehandler.KindPhoto:
		switch {
		case !h.Photo.ContainsExifData:
			s.invalidPhotoFileHandlers = append(s.invalidPhotoFileHandlers, h)
			s.photoFilesUnsupportedFound.Add(1)
			s.filesFound.Add(1)
		case !h.Photo.ValidCreationDateInExif:
			s.invalidPhotoFileHandlers = append(s.invalidPhotoFileHandlers, h)
			s.photoFilesUnsupportedFound.Add(1)
			s.filesFound.Add(1)
		default:
			s.photoFilesFoundContainingExifData.Add(1)
			s.photoFilesFoundContainingValidCreationDate.Add(1)
			s.photoFileHandlers = append(s.photoFileHandlers, h)
			s.filesFound.Add(1)
		}

	default: // KindBasic
		s.basicFileHandlers = append(s.basicFileHandlers, h)
		s.photoFilesUnsupportedFound.Add(1)
		s.filesFound.Add(1)
	}
}

// ResetScanner clears every bucket and counter. It is a no-op while a scan
// is running.
func (s *Scanner) ResetScanner() {
	if s.scanRunning.Load() {
		return
	}
	s.resetLocked()
}

func (s *Scanner) resetLocked() {
	s.photoFileHandlers = nil
	s.invalidPhotoFileHandlers = nil
	s.videoFileHandlers = nil
	s.basicFileHandlers = nil
	s.filesFound.Store(0)
	s.photoFilesFoundContainingExifData.Store(0)
	s.photoFilesFoundContainingValidCreationDate.Store(0)
	s.photoFilesUnsupportedFound.Store(0)
}

// CancelScan requests cancellation of an in-progress Scan from any
// goroutine. The scanner observes it between directory entries.
func (s *Scanner) CancelScan() { s.cancelScan.Store(true) }

// ScanRunning reports whether a Scan call is currently in progress.
func (s *Scanner) ScanRunning() bool { return s.scanRunning.Load() }

// GetPhotoFileHandlers returns the valid-photo bucket. The caller takes
// ownership of the returned slice; the scanner does not retain it once
// drained.
func (s *Scanner) GetPhotoFileHandlers() []*filehandler.Handler {
	out := s.photoFileHandlers
	s.photoFileHandlers = nil
	return out
}

// GetInvalidPhotoFileHandlers returns the invalid-photo bucket, draining it
// the same way GetPhotoFileHandlers does.
func (s *Scanner) GetInvalidPhotoFileHandlers() []*filehandler.Handler {
	out := s.invalidPhotoFileHandlers
	s.invalidPhotoFileHandlers = nil
	return out
}

// GetVideoFileHandlers returns the video bucket without draining it.
func (s *Scanner) GetVideoFileHandlers() []*filehandler.Handler {
	return s.videoFileHandlers
}

// GetBasicFileHandlers returns the basic bucket without draining it.
func (s *Scanner) GetBasicFileHandlers() []*filehandler.Handler {
	return s.basicFileHandlers
}

func (s *Scanner) GetTotalFilesFound() int {
	return int(s.filesFound.Load())
}

func (s *Scanner) GetPhotoFilesFoundContainingExifData() int {
	return int(s.photoFilesFoundContainingExifData.Load())
}

func (s *Scanner) GetPhotoFilesFoundContainingValidCreationDate() int {
	return int(s.photoFilesFoundContainingValidCreationDate.Load())
}

func (s *Scanner) GetPhotoFilesUnsupportedFound() int {
	return int(s.photoFilesUnsupportedFound.Load())
}
