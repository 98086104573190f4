// Package exifdata wraps the EXIF decoder used by the scanner and duplicate
// detector behind a small contract: decode a buffer into a Record, and
// compare two Records for the structural equality the duplicate detector
// needs. The underlying parser is github.com/rwcarlsen/goexif/exif, with
// HEIF/HEIC containers unwrapped first by github.com/jdeng/goheif.
package exifdata

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jdeng/goheif"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	// Registers maker-note parsers for common camera vendors so Model and
	// DateTimeOriginal resolve consistently across more files.
	exif.RegisterParsers(mknote.All...)
}

// DateTimeLayout is the EXIF DateTimeOriginal / DateTimeDigitized format.
const DateTimeLayout = "2006:01:02 15:04:05"

// Record holds the subset of an EXIF payload the core cares about: the
// fields used to derive attributes (Model, DateTimeOriginal) plus the
// fields used only for duplicate-equality comparison.
type Record struct {
	Make             string
	Model            string
	DateTimeOriginal string
	ImageWidth       string
	ImageHeight      string
}

// Equal reports whether two records are identical across the documented
// comparison subset. The underlying goexif Exif type carries unexported
// fields and defines no equality operator, so duplicate identity is a
// field-wise comparison over Make, Model, DateTimeOriginal, and the image
// dimensions.
func (r Record) Equal(other Record) bool {
	return r.Make == other.Make &&
		r.Model == other.Model &&
		r.DateTimeOriginal == other.DateTimeOriginal &&
		r.ImageWidth == other.ImageWidth &&
		r.ImageHeight == other.ImageHeight
}

// IsZero reports whether the record carries no usable data at all.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Decode parses an EXIF payload out of buf. A non-nil error means the
// buffer contained no recognizable EXIF data; callers route that to the
// invalid-photo bucket rather than treating it as fatal. HEIF/HEIC
// containers are unwrapped to their embedded EXIF block before the
// goexif parse, since goexif only understands TIFF and JPEG framing.
func Decode(buf []byte) (Record, error) {
	exifBuf := buf
	if isHEIF(buf) {
		raw, err := goheif.ExtractExif(bytes.NewReader(buf))
		if err != nil {
			return Record{}, fmt.Errorf("exifdata: extract heif exif: %w", err)
		}
		exifBuf = raw
	}

	x, err := exif.Decode(bytes.NewReader(exifBuf))
	if err != nil {
		return Record{}, fmt.Errorf("exifdata: decode: %w", err)
	}

	rec := Record{
		Make:             fieldString(x, exif.FieldName("Make")),
		Model:            fieldString(x, exif.FieldName("Model")),
		DateTimeOriginal: fieldString(x, exif.DateTimeOriginal),
		ImageWidth:       fieldString(x, exif.FieldName("ImageWidth")),
		ImageHeight:      fieldString(x, exif.FieldName("ImageHeight")),
	}
	return rec, nil
}

// isHEIF reports whether buf starts with an ISO base media file format
// "ftyp" box, the container HEIF/HEIC files use.
func isHEIF(buf []byte) bool {
	return len(buf) >= 12 && string(buf[4:8]) == "ftyp"
}

func fieldString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	if s, err := tag.StringVal(); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(tag.String())
}

// ParseDateTimeOriginal parses the EXIF DateTimeOriginal string in the
// process's local calendar.
func ParseDateTimeOriginal(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, time.Local)
}
