package filehandler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/user/metamover/internal/exifdata"
)

// photoExtensions and videoExtensions are the two fixed extension sets
// Make uses to classify a file. HEIC/HEIF photos get their EXIF data
// unwrapped from the container by internal/exifdata before decoding.
var photoExtensions = map[string]struct{}{
	"jpeg": {}, "jpg": {}, "png": {}, "gif": {}, "bmp": {}, "tiff": {}, "tif": {},
	"svg": {}, "webp": {}, "heif": {}, "heic": {}, "raw": {}, "cr2": {}, "nef": {},
	"orf": {}, "psd": {}, "ico": {}, "exr": {},
}

var videoExtensions = map[string]struct{}{
	"avi": {}, "flv": {}, "wmv": {}, "mov": {}, "mp4": {}, "m4v": {}, "mpg": {},
	"mpeg": {}, "3gp": {}, "mkv": {}, "webm": {}, "vob": {}, "ogg": {},
}

// maxDecodableSize is the largest file size, in bytes, that extractEXIF
// hands to the EXIF decoder; the file is read in full before the check.
const maxDecodableSize = 1<<32 - 1

// Make builds the appropriate Handler variant for path based on a
// case-insensitive extension match. Construction is not fallible: a Photo
// handler whose file can't be opened or decoded simply carries
// FileValid/ContainsExifData set to false rather than returning an error.
func Make(path string) *Handler {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch {
	case extIn(ext, photoExtensions):
		h := New(KindPhoto, path)
		extractEXIF(h)
		return h
	case extIn(ext, videoExtensions):
		return New(KindVideo, path)
	default:
		return New(KindBasic, path)
	}
}

func extIn(ext string, set map[string]struct{}) bool {
	_, ok := set[ext]
	return ok
}

// extractEXIF opens the file, reads it fully, decodes EXIF, and parses the
// original-date field. All failures are reflected in h.Photo's flags,
// never returned as an error.
func extractEXIF(h *Handler) {
	p := h.Photo

	info, err := os.Stat(h.SourceFilePath)
	if err != nil {
		p.FileValid = false
		return
	}
	p.FileCreationTime = info.ModTime()

	buf, err := os.ReadFile(h.SourceFilePath)
	if err != nil {
		p.FileValid = false
		return
	}
	if len(buf) > maxDecodableSize {
		p.FileValid = false
		return
	}
	p.FileValid = true

	rec, err := exifdata.Decode(buf)
	if err != nil {
		p.ContainsExifData = false
		return
	}
	p.ContainsExifData = true
	p.Exif = rec
	p.CameraModel = rec.Model

	t, err := exifdata.ParseDateTimeOriginal(rec.DateTimeOriginal)
	if err != nil {
		p.ValidCreationDateInExif = false
		return
	}
	p.OriginalDateTime = t
	p.ValidCreationDateInExif = true
}
