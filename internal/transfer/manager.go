package transfer

import (
	"sync/atomic"

	"github.com/user/metamover/internal/filehandler"
	"github.com/user/metamover/internal/logging"
	"github.com/user/metamover/internal/settings"
)

// TransferManager orchestrates the full transfer pipeline: plan
// destinations, detect and resolve duplicates per the configured policy,
// bypass invalid files to their own directory, execute every surviving
// batch, and report progress.
type TransferManager struct {
	settings settings.Settings
	log      logging.Logger

	directoryTransferMap map[string]*DirectoryTransfer

	progress        atomic.Int32
	duplicatesFound atomic.Int32
	transferRunning atomic.Bool
	cancelTransfer  atomic.Bool
}

// NewTransferManager returns a manager bound to s, logging through log.
// A nil log is replaced with a no-op logger.
func NewTransferManager(s settings.Settings, log logging.Logger) *TransferManager {
	if log == nil {
		log = logging.NewNop()
	}
	return &TransferManager{settings: s, log: log}
}

// GetTransferProgress reports the percentage, in [0,100], of batches
// processed so far by the current or most recent ProcessPhotoFiles call.
func (tm *TransferManager) GetTransferProgress() int { return int(tm.progress.Load()) }

// TransferRunning reports whether ProcessPhotoFiles is currently active.
func (tm *TransferManager) TransferRunning() bool { return tm.transferRunning.Load() }

// GetDuplicatesFound reports how many handlers duplicate detection flagged
// as duplicates in the most recent ProcessPhotoFiles call, regardless of
// how duplicatesFoundSelection then resolved them.
func (tm *TransferManager) GetDuplicatesFound() int { return int(tm.duplicatesFound.Load()) }

// CancelTransfer requests cancellation of an in-progress ProcessPhotoFiles
// call. Observed once per batch, at the start of the execute stage.
func (tm *TransferManager) CancelTransfer() { tm.cancelTransfer.Store(true) }

// ResetTransferManager clears accumulated state. A no-op while a transfer
// is running, matching the Scanner's ResetScanner contract.
func (tm *TransferManager) ResetTransferManager() {
	if tm.transferRunning.Load() {
		return
	}
	tm.directoryTransferMap = nil
	tm.progress.Store(0)
	tm.cancelTransfer.Store(false)
}

// ProcessPhotoFiles drains validPhotos and invalidPhotos (the caller no
// longer owns either slice afterward) and runs the seven-step pipeline,
// blocking until every batch has executed or cancellation is observed.
func (tm *TransferManager) ProcessPhotoFiles(validPhotos, invalidPhotos []*filehandler.Handler, moveFiles bool) error {
	tm.transferRunning.Store(true)
	tm.cancelTransfer.Store(false)
	tm.progress.Store(0)
	tm.duplicatesFound.Store(0)
	tm.directoryTransferMap = make(map[string]*DirectoryTransfer)
	defer func() {
		tm.directoryTransferMap = nil
		tm.transferRunning.Store(false)
	}()

	// 1. Plan destinations.
	for _, h := range validPhotos {
		targetDir := GenerateDirectoryPath(h, tm.settings.OutputDirectory, tm.settings.PhotosOutputFolderStructureSelection)
		tm.batchFor(targetDir).AddPhotoFileToTransfer(h)
	}

	// 2. Duplicate detection.
	var duplicates []*filehandler.Handler
	switch tm.settings.PhotosDuplicateIdentitySetting {
	case settings.IdentityFileNamesMatch:
		for _, batch := range tm.directoryTransferMap {
			duplicates = append(duplicates, batch.GetAllPhotoFilenameDuplicates()...)
		}
	case settings.IdentityExifAndContentMatch:
		for _, batch := range tm.directoryTransferMap {
			duplicates = append(duplicates, batch.GetAllPhotoEXIFDuplicates()...)
		}
	}

	tm.duplicatesFound.Store(int32(len(duplicates)))

	// 3. Duplicate resolution.
	tm.resolveDuplicates(duplicates)

	// 4. Invalid-file bypass.
	if tm.settings.MoveInvalidFileMeta && len(invalidPhotos) > 0 {
		tm.batchFor(tm.settings.InvalidFileMetaDirectory).SetPhotoFilesToTransfer(invalidPhotos)
	}

	// 5. Prune empty batches.
	for dir, batch := range tm.directoryTransferMap {
		if batch.GetFilesToMoveCount() == 0 {
			delete(tm.directoryTransferMap, dir)
		}
	}

	// 6. Execute.
	total := len(tm.directoryTransferMap)
	processed := 0
	for _, batch := range tm.directoryTransferMap {
		if tm.cancelTransfer.Load() {
			tm.progress.Store(0)
			break
		}
		if err := batch.TransferFiles(moveFiles, tm.settings.PhotosReplaceDashesWithUnderscores, tm.log); err != nil {
			tm.log.Errorf("transfer manager: batch %s failed: %v", batch.TargetDirectory(), err)
		}
		processed++
		tm.progress.Store(int32(100 * processed / total))
	}

	// 7. Finalize happens in the deferred cleanup above.
	return nil
}

func (tm *TransferManager) batchFor(targetDir string) *DirectoryTransfer {
	batch, ok := tm.directoryTransferMap[targetDir]
	if !ok {
		batch = NewDirectoryTransfer(targetDir)
		tm.directoryTransferMap[targetDir] = batch
	}
	return batch
}

// resolveDuplicates applies duplicatesFoundSelection to the duplicates
// list, reinserting survivors into the appropriate batch.
func (tm *TransferManager) resolveDuplicates(duplicates []*filehandler.Handler) {
	switch tm.settings.DuplicatesFoundSelection {
	case settings.DuplicatesAddCopySuffix:
		for _, h := range duplicates {
			destDir := GenerateDirectoryPath(h, tm.settings.OutputDirectory, tm.settings.PhotosOutputFolderStructureSelection)
			batch := tm.batchFor(destDir)
			h.SetTargetFileName(CreateNumericalFileName(h.TargetFileName, destDir, batch.Files(), true))
			batch.AddPhotoFileToTransfer(h)
		}

	case settings.DuplicatesDoNotMoveOrCopy:
		// Drop the list: nothing reinserted.

	case settings.DuplicatesOverwrite:
		for _, h := range duplicates {
			if h.Photo != nil {
				h.Photo.OverwriteEnabled = true
			}
			destDir := GenerateDirectoryPath(h, tm.settings.OutputDirectory, tm.settings.PhotosOutputFolderStructureSelection)
			tm.batchFor(destDir).AddPhotoFileToTransfer(h)
		}

	case settings.DuplicatesMoveToFolder:
		destDir := tm.settings.DuplicatesDirectory
		batch := tm.batchFor(destDir)
		for _, h := range duplicates {
			h.SetTargetFileName(CreateNumericalFileName(h.TargetFileName, destDir, batch.Files(), true))
			batch.AddPhotoFileToTransfer(h)
		}
	}
}
