// Package transfer implements the destination planner, duplicate
// detector/resolver, and transfer executor: DirectoryTransfer (one batch
// per target directory) and TransferManager (the orchestrator that
// plans, deduplicates, and executes all batches).
package transfer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/metamover/internal/filehandler"
	"github.com/user/metamover/internal/logging"
	"github.com/user/metamover/internal/scanner"
)

// DirectoryTransfer holds one planned transfer batch for a single target
// directory.
type DirectoryTransfer struct {
	targetDirectory      string
	photoFilesToTransfer []*filehandler.Handler
}

// NewDirectoryTransfer returns a batch targeting directory dir.
func NewDirectoryTransfer(dir string) *DirectoryTransfer {
	return &DirectoryTransfer{targetDirectory: dir}
}

// TargetDirectory returns the batch's destination directory.
func (dt *DirectoryTransfer) TargetDirectory() string { return dt.targetDirectory }

// SetTargetDirectory changes the batch's destination directory.
func (dt *DirectoryTransfer) SetTargetDirectory(dir string) { dt.targetDirectory = dir }

// Files returns the batch's current contents. Callers that need to search
// it (createNumericalFileName's in-flight collision check) use this
// directly; mutating it outside DirectoryTransfer's own methods is not
// supported.
func (dt *DirectoryTransfer) Files() []*filehandler.Handler { return dt.photoFilesToTransfer }

// AddPhotoFileToTransfer appends h to the batch.
func (dt *DirectoryTransfer) AddPhotoFileToTransfer(h *filehandler.Handler) {
	dt.photoFilesToTransfer = append(dt.photoFilesToTransfer, h)
}

// SetPhotoFilesToTransfer appends every handler in hs to the batch.
func (dt *DirectoryTransfer) SetPhotoFilesToTransfer(hs []*filehandler.Handler) {
	for _, h := range hs {
		dt.AddPhotoFileToTransfer(h)
	}
}

// RemovePhotoFileFromTransfer removes the entry whose source path equals
// h's, returning whether a removal occurred.
func (dt *DirectoryTransfer) RemovePhotoFileFromTransfer(h *filehandler.Handler) bool {
	if h == nil {
		return false
	}
	kept := dt.photoFilesToTransfer[:0]
	removed := false
	for _, existing := range dt.photoFilesToTransfer {
		if existing.SourceFilePath == h.SourceFilePath {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	dt.photoFilesToTransfer = kept
	return removed
}

// MovePhotoFileToAnotherVector transfers ownership of the entry matching
// h's source path into *dest, returning whether it was found.
func (dt *DirectoryTransfer) MovePhotoFileToAnotherVector(h *filehandler.Handler, dest *[]*filehandler.Handler) bool {
	if h == nil {
		return false
	}
	for i, existing := range dt.photoFilesToTransfer {
		if existing.SourceFilePath == h.SourceFilePath {
			*dest = append(*dest, existing)
			dt.photoFilesToTransfer = append(dt.photoFilesToTransfer[:i], dt.photoFilesToTransfer[i+1:]...)
			return true
		}
	}
	return false
}

// GetAllPhotoFilenameDuplicates partitions the batch into (kept,
// duplicated) by testing whether each handler's target filename already
// exists in targetDirectory, returning the duplicated half and retaining
// the rest. A non-existent target directory yields no duplicates.
func (dt *DirectoryTransfer) GetAllPhotoFilenameDuplicates() []*filehandler.Handler {
	existing, err := existingFilenames(dt.targetDirectory)
	if err != nil {
		return nil
	}

	var kept, duplicates []*filehandler.Handler
	for _, h := range dt.photoFilesToTransfer {
		if _, ok := existing[h.TargetFileName]; ok {
			duplicates = append(duplicates, h)
		} else {
			kept = append(kept, h)
		}
	}
	dt.photoFilesToTransfer = kept
	return duplicates
}

func existingFilenames(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names[entry.Name()] = struct{}{}
		}
	}
	return names, nil
}

// GetAllPhotoEXIFDuplicates runs a two-phase EXIF-identity duplicate
// search: an O(n squared) intra-batch pass (the older fileCreationTime
// loses as the duplicate, ties broken by discovery order), followed by a
// cross-directory pass against a fresh non-recursive scan of
// targetDirectory when it exists.
func (dt *DirectoryTransfer) GetAllPhotoEXIFDuplicates() []*filehandler.Handler {
	var duplicates []*filehandler.Handler
	var unique []*filehandler.Handler

	for _, candidate := range dt.photoFilesToTransfer {
		dupIndex := -1
		for i, kept := range unique {
			if candidate.Photo.Exif.Equal(kept.Photo.Exif) {
				dupIndex = i
				break
			}
		}
		if dupIndex == -1 {
			unique = append(unique, candidate)
			continue
		}
		kept := unique[dupIndex]
		if candidate.Photo.FileCreationTime.Before(kept.Photo.FileCreationTime) {
			duplicates = append(duplicates, candidate)
		} else {
			duplicates = append(duplicates, kept)
			unique[dupIndex] = candidate
		}
	}
	dt.photoFilesToTransfer = unique

	if info, err := os.Stat(dt.targetDirectory); err == nil && info.IsDir() {
		targetScanner := scanner.New()
		_ = targetScanner.Scan(dt.targetDirectory, false)
		existingPhotos := targetScanner.GetPhotoFileHandlers()

		var kept []*filehandler.Handler
		for _, candidate := range dt.photoFilesToTransfer {
			matched := false
			for _, existing := range existingPhotos {
				if candidate.Photo.Exif.Equal(existing.Photo.Exif) {
					duplicates = append(duplicates, candidate)
					matched = true
					break
				}
			}
			if !matched {
				kept = append(kept, candidate)
			}
		}
		dt.photoFilesToTransfer = kept
	}

	return duplicates
}

// GetFilesToMoveCount returns the batch's current cardinality.
func (dt *DirectoryTransfer) GetFilesToMoveCount() int { return len(dt.photoFilesToTransfer) }

// Clear empties the batch and its target directory.
func (dt *DirectoryTransfer) Clear() {
	dt.photoFilesToTransfer = nil
	dt.targetDirectory = ""
}

// TransferFiles materializes the batch as copies or moves. A filesystem
// error on any single file aborts the remaining entries in the batch and
// is reported back as an error.
func (dt *DirectoryTransfer) TransferFiles(move bool, replaceDashesWithUnderscores bool, log logging.Logger) error {
	if err := os.MkdirAll(dt.targetDirectory, 0o755); err != nil {
		return fmt.Errorf("create target directory %s: %w", dt.targetDirectory, err)
	}

	for _, h := range dt.photoFilesToTransfer {
		targetName := h.TargetFileName
		if replaceDashesWithUnderscores {
			targetName = replaceDashes(targetName)
		}
		targetPath := filepath.Join(dt.targetDirectory, targetName)

		var err error
		if move {
			if h.Photo != nil && h.Photo.OverwriteEnabled {
				err = moveFile(h.SourceFilePath, targetPath)
			} else if _, statErr := os.Stat(targetPath); os.IsNotExist(statErr) {
				err = moveFile(h.SourceFilePath, targetPath)
			} else {
				log.Errorf("transfer: target exists and overwrite disabled: %s", targetPath)
				continue
			}
		} else {
			overwrite := h.Photo != nil && h.Photo.OverwriteEnabled
			err = copyFile(h.SourceFilePath, targetPath, overwrite)
		}

		if err != nil {
			log.Errorf("transfer: %v", err)
			return fmt.Errorf("transfer %s: %w", h.SourceFilePath, err)
		}
	}
	return nil
}

// replaceDashes replaces '-' with '_' in the base name only, leaving the
// extension untouched.
func replaceDashes(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return strings.ReplaceAll(base, "-", "_") + ext
}
