package settings

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineCount is the number of lines the persisted settings file always
// carries.
const lineCount = 10

// Save writes s to w in the ten-line text format Load reads back.
func Save(w io.Writer, s Settings) error {
	lines := []string{
		s.SourceDirectory,
		s.OutputDirectory,
		s.InvalidFileMetaDirectory,
		s.DuplicatesDirectory,
		string(s.DuplicatesFoundSelection),
		s.PhotosOutputFolderStructureSelection,
		string(s.PhotosDuplicateIdentitySetting),
		boolLine(s.MoveInvalidFileMeta),
		boolLine(s.IncludeSubDirectories),
		boolLine(s.PhotosReplaceDashesWithUnderscores),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("settings: save: %w", err)
		}
	}
	return nil
}

// Load reads a Settings snapshot from r in the format Save writes. It
// returns an error if fewer than the expected ten lines are present.
func Load(r io.Reader) (Settings, error) {
	sc := bufio.NewScanner(r)
	var lines [lineCount]string
	for i := 0; i < lineCount; i++ {
		if !sc.Scan() {
			return Settings{}, fmt.Errorf("settings: load: expected %d lines, got %d", lineCount, i)
		}
		lines[i] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return Settings{}, fmt.Errorf("settings: load: %w", err)
	}

	return Settings{
		SourceDirectory:                      lines[0],
		OutputDirectory:                      lines[1],
		InvalidFileMetaDirectory:             lines[2],
		DuplicatesDirectory:                  lines[3],
		DuplicatesFoundSelection:             DuplicatesFoundSelection(lines[4]),
		PhotosOutputFolderStructureSelection: lines[5],
		PhotosDuplicateIdentitySetting:       DuplicateIdentitySetting(lines[6]),
		MoveInvalidFileMeta:                  parseBoolLine(lines[7]),
		IncludeSubDirectories:                parseBoolLine(lines[8]),
		PhotosReplaceDashesWithUnderscores:   parseBoolLine(lines[9]),
	}, nil
}

func boolLine(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBoolLine(s string) bool {
	return strings.TrimSpace(s) == "1"
}
