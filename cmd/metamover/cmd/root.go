// Package cmd implements metamover's command-line front end: flag
// parsing, a progress bar driven by TransferManager's poll API, and
// signal-based cancellation wiring. The core packages under internal/
// carry none of this.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/user/metamover/internal/logging"
	"github.com/user/metamover/internal/reporting"
	"github.com/user/metamover/internal/scanner"
	"github.com/user/metamover/internal/settings"
	"github.com/user/metamover/internal/transfer"
)

const version = "0.1.0"

var (
	sourceDir             string
	outputDir             string
	invalidFileMetaDir    string
	duplicatesDir         string
	folderStructure       string
	duplicatesFound       string
	duplicateIdentity     string
	moveFiles             bool
	moveInvalidFileMeta   bool
	includeSubDirectories bool
	replaceDashes         bool
	verbose               bool
)

var rootCmd = &cobra.Command{
	Use:     "metamover SOURCE OUTPUT",
	Short:   "Sort photos into a dated, camera-organized directory tree",
	Version: version,
	Args:    cobra.ExactArgs(2),
	RunE:    run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&folderStructure, "folder-structure", "Year, Month, Day", "comma-separated destination folder structure (Year, Month, Day, Camera Model)")
	rootCmd.Flags().StringVar(&duplicatesFound, "duplicates", string(settings.DuplicatesAddCopySuffix), "duplicate resolution policy")
	rootCmd.Flags().StringVar(&duplicateIdentity, "duplicate-identity", string(settings.IdentityExifAndContentMatch), "duplicate identity rule")
	rootCmd.Flags().StringVar(&invalidFileMetaDir, "invalid-dir", "", "directory for photos with missing or invalid EXIF metadata")
	rootCmd.Flags().StringVar(&duplicatesDir, "duplicates-dir", "", "directory used by the \"Move To Folder\" duplicate policy")
	rootCmd.Flags().BoolVar(&moveFiles, "move", false, "move files instead of copying them")
	rootCmd.Flags().BoolVar(&moveInvalidFileMeta, "move-invalid", false, "route photos with invalid metadata into --invalid-dir instead of leaving them")
	rootCmd.Flags().BoolVarP(&includeSubDirectories, "recursive", "r", false, "scan source subdirectories")
	rootCmd.Flags().BoolVar(&replaceDashes, "replace-dashes", false, "replace '-' with '_' in destination filenames")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic logging")
}

func run(_ *cobra.Command, args []string) error {
	sourceDir, outputDir = args[0], args[1]

	log := logging.New(verbose)

	s := settings.Settings{
		SourceDirectory:                      sourceDir,
		OutputDirectory:                      outputDir,
		InvalidFileMetaDirectory:             invalidFileMetaDir,
		DuplicatesDirectory:                  duplicatesDir,
		MoveInvalidFileMeta:                  moveInvalidFileMeta,
		IncludeSubDirectories:                includeSubDirectories,
		PhotosReplaceDashesWithUnderscores:   replaceDashes,
		DuplicatesFoundSelection:             settings.DuplicatesFoundSelection(duplicatesFound),
		PhotosOutputFolderStructureSelection: folderStructure,
		PhotosDuplicateIdentitySetting:       settings.DuplicateIdentitySetting(duplicateIdentity),
	}

	if err := s.ScanConfigurationValid(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := s.CopyConfigurationValid(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sc := scanner.New()
	tm := transfer.NewTransferManager(s, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			log.Infof("cancellation requested, finishing the current file")
			sc.CancelScan()
			tm.CancelTransfer()
		}
	}()

	log.Infof("scanning %s", sourceDir)
	if err := sc.Scan(sourceDir, s.IncludeSubDirectories); err != nil {
		if errors.Is(err, scanner.ErrInvalidSource) {
			return fmt.Errorf("metamover: %w", err)
		}
		return fmt.Errorf("metamover: scan failed: %w", err)
	}
	videosFound := len(sc.GetVideoFileHandlers())
	validPhotos := sc.GetPhotoFileHandlers()
	invalidPhotos := sc.GetInvalidPhotoFileHandlers()

	log.Infof("found %d file(s): %d valid photo(s), %d unsupported, %d video(s)",
		sc.GetTotalFilesFound(), len(validPhotos), len(invalidPhotos), videosFound)

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("transferring"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go pollProgress(tm, bar, done)

	err := tm.ProcessPhotoFiles(validPhotos, invalidPhotos, moveFiles)
	close(done)
	_ = bar.Finish()

	if err != nil {
		return fmt.Errorf("metamover: transfer failed: %w", err)
	}

	reportPath := filepath.Join(outputDir, "report.txt")
	summary := reporting.Summary{
		FilesFound:             sc.GetTotalFilesFound(),
		ValidPhotosFound:       len(validPhotos),
		UnsupportedPhotosFound: len(invalidPhotos),
		VideosFound:            videosFound,
		DuplicatesFound:        tm.GetDuplicatesFound(),
	}
	if err := reporting.Write(reportPath, summary); err != nil {
		log.Errorf("metamover: report: %v", err)
	}

	log.Infof("done, report written to %s", reportPath)
	return nil
}

// pollProgress is a ticker that polls TransferManager's percentage and
// renders it through schollz/progressbar until done is closed.
func pollProgress(tm *transfer.TransferManager, bar *progressbar.ProgressBar, done <-chan struct{}) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = bar.Set(tm.GetTransferProgress())
		}
	}
}
