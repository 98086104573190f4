package transfer

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/user/metamover/internal/filehandler"
)

// monthNames is the display name for each 1-indexed calendar month.
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GenerateDirectoryPath builds the destination subdirectory for h under
// outputRoot by walking the comma-separated tokens in structure. Both
// "CameraModel" and "Camera Model" are accepted as the camera-model
// token; unrecognized tokens are skipped.
func GenerateDirectoryPath(h *filehandler.Handler, outputRoot string, structure string) string {
	segments := []string{outputRoot}

	for _, rawToken := range strings.Split(structure, ",") {
		token := strings.ToLower(strings.TrimSpace(rawToken))
		switch token {
		case "year":
			segments = append(segments, yearOf(h))
		case "month":
			segments = append(segments, monthOf(h))
		case "day":
			segments = append(segments, dayOf(h))
		case "cameramodel", "camera model":
			if model := cameraModelOf(h); model != "" {
				segments = append(segments, model)
			}
		}
	}

	return filepath.Join(segments...)
}

func yearOf(h *filehandler.Handler) string {
	if h.Photo == nil || h.Photo.OriginalDateTime.IsZero() {
		return "Unknown"
	}
	return strconv.Itoa(h.Photo.OriginalDateTime.Year())
}

func monthOf(h *filehandler.Handler) string {
	if h.Photo == nil || h.Photo.OriginalDateTime.IsZero() {
		return "Unknown"
	}
	m := int(h.Photo.OriginalDateTime.Month())
	if m < 1 || m > 12 {
		return "Unknown"
	}
	return monthNames[m-1]
}

func dayOf(h *filehandler.Handler) string {
	if h.Photo == nil || h.Photo.OriginalDateTime.IsZero() {
		return "Unknown"
	}
	return strconv.Itoa(h.Photo.OriginalDateTime.Day())
}

func cameraModelOf(h *filehandler.Handler) string {
	if h.Photo == nil {
		return ""
	}
	return sanitizePathSegment(h.Photo.CameraModel)
}

// sanitizePathSegment replaces each character that cannot appear in a
// path segment on common filesystems with '-' and trims surrounding
// whitespace.
func sanitizePathSegment(s string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-",
	)
	return strings.TrimSpace(replacer.Replace(s))
}
