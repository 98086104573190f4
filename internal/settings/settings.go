// Package settings models the read-only configuration snapshot consumed
// by the scanner and transfer manager. It is passed by value into each
// long-running operation, so no in-flight scan or transfer ever observes
// a mutated snapshot.
package settings

// DuplicatesFoundSelection enumerates the duplicate resolution policies.
type DuplicatesFoundSelection string

const (
	DuplicatesAddCopySuffix    DuplicatesFoundSelection = "Add 'Copy##' and Move/Copy"
	DuplicatesDoNotMoveOrCopy  DuplicatesFoundSelection = "Do Not Move or Copy"
	DuplicatesOverwrite        DuplicatesFoundSelection = "Overwrite"
	DuplicatesMoveToFolder     DuplicatesFoundSelection = "Move To Folder"
)

// DuplicateIdentitySetting enumerates the duplicate identity rules.
type DuplicateIdentitySetting string

const (
	IdentityFileNamesMatch      DuplicateIdentitySetting = "File Names Match"
	IdentityExifAndContentMatch DuplicateIdentitySetting = "All EXIF and Exact File Contents Match"
)

// Settings is the immutable snapshot the core reads from. Mutating it
// after a scan or transfer has started never affects that in-flight
// operation; callers install a new Settings value for the next run.
type Settings struct {
	SourceDirectory           string
	OutputDirectory           string
	InvalidFileMetaDirectory  string
	DuplicatesDirectory       string

	MoveInvalidFileMeta                bool
	IncludeSubDirectories               bool
	PhotosReplaceDashesWithUnderscores bool

	DuplicatesFoundSelection             DuplicatesFoundSelection
	PhotosOutputFolderStructureSelection string
	PhotosDuplicateIdentitySetting       DuplicateIdentitySetting
}

// DuplicatesFoundOptions lists the selectable values for
// DuplicatesFoundSelection.
var DuplicatesFoundOptions = []DuplicatesFoundSelection{
	DuplicatesAddCopySuffix,
	DuplicatesDoNotMoveOrCopy,
	DuplicatesOverwrite,
	DuplicatesMoveToFolder,
}

// FolderStructureOptions lists the preset folder-structure templates.
// Settings.PhotosOutputFolderStructureSelection is not restricted to
// these presets: any comma-separated combination of the four tokens is
// accepted by the planner.
var FolderStructureOptions = []string{
	"Year",
	"Month",
	"Day",
	"Year, Month",
	"Year, Month, Day",
	"Year, Month, Day, Camera Model",
	"Camera Model, Year",
	"Camera Model, Year, Month",
	"Camera Model, Year, Month, Day",
}
