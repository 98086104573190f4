// Package filehandler models one source file as a single tagged-union
// value: a Kind tag plus Photo-specific fields populated only when Kind
// is KindPhoto.
package filehandler

import (
	"path/filepath"
	"time"

	"github.com/user/metamover/internal/exifdata"
)

// Kind identifies which variant of file a Handler represents.
type Kind int

const (
	KindBasic Kind = iota
	KindPhoto
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	default:
		return "basic"
	}
}

// PhotoAttributes holds the fields reserved for the Photo subvariant.
type PhotoAttributes struct {
	Exif                    exifdata.Record
	FileValid               bool
	ContainsExifData        bool
	ValidCreationDateInExif bool
	OriginalDateTime        time.Time
	CameraModel             string
	OverwriteEnabled        bool
	FileCreationTime        time.Time
}

// Handler represents one source file. Photo is non-nil only when
// Kind == KindPhoto; all other kinds carry just the common fields.
type Handler struct {
	Kind           Kind
	SourceFilePath string
	SourceFileName string
	TargetFileName string
	Photo          *PhotoAttributes
}

// New constructs a Handler for sourcePath with the given kind. The target
// filename starts out equal to the source filename.
func New(kind Kind, sourcePath string) *Handler {
	h := &Handler{
		Kind:           kind,
		SourceFilePath: sourcePath,
		SourceFileName: filepath.Base(sourcePath),
	}
	if kind == KindPhoto {
		h.Photo = &PhotoAttributes{}
	}
	h.SetTargetFileName("")
	return h
}

// SetTargetFileName assigns the target filename, enforcing the extension
// invariant: an empty name defaults to the source filename; a name with
// no extension gets the source extension appended; a name with a
// mismatched extension has that extension replaced; a name with no
// directory component is stored as the bare filename, while a name that
// carries a directory component is stored as given.
func (h *Handler) SetTargetFileName(name string) {
	if name == "" {
		name = h.SourceFileName
	}

	sourceExt := filepath.Ext(h.SourceFilePath)
	currentExt := filepath.Ext(name)

	if currentExt != sourceExt {
		if currentExt == "" {
			name += sourceExt
		} else {
			name = name[:len(name)-len(currentExt)] + sourceExt
		}
	}

	if dir := filepath.Dir(name); dir == "." {
		// No directory component supplied: store the bare filename.
		h.TargetFileName = filepath.Base(name)
	} else {
		// A directory was supplied alongside the name: keep it as given.
		h.TargetFileName = name
	}
}
