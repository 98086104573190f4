package transfer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/user/metamover/internal/filehandler"
)

// copySuffixPattern matches a trailing "_Copy<digits>" immediately before
// the extension.
var copySuffixPattern = regexp.MustCompile(`_Copy\d+$`)

// CreateNumericalFileName allocates a collision-free filename for name in
// targetDir. When the unmodified name does not already collide with
// targetDir and forceSuffix is false, it is returned unchanged. Otherwise
// any existing "_Copy\d+" suffix is stripped (always, never accumulated
// across repeated resolution passes) and the lowest non-negative integer
// absent from both the on-disk files in targetDir and the already-queued
// handlers is assigned.
func CreateNumericalFileName(name string, targetDir string, queued []*filehandler.Handler, forceSuffix bool) string {
	if !forceSuffix {
		if _, err := os.Stat(filepath.Join(targetDir, name)); os.IsNotExist(err) {
			return name
		}
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	base = copySuffixPattern.ReplaceAllString(base, "")

	used := usedCopyIndices(base, ext, targetDir, queued)

	n := 0
	for {
		if _, ok := used[n]; !ok {
			break
		}
		n++
	}
	return fmt.Sprintf("%s_Copy%02d%s", base, n, ext)
}

// usedCopyIndices returns the set of copy indices already occupied by
// on-disk files in targetDir or by queued handlers' target filenames,
// matching the "{base}_Copy{n}{ext}" shape.
func usedCopyIndices(base, ext, targetDir string, queued []*filehandler.Handler) map[int]struct{} {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `_Copy(\d+)` + regexp.QuoteMeta(ext) + `$`)
	used := make(map[int]struct{})

	addMatch := func(name string) {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			return
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			used[n] = struct{}{}
		}
	}

	if entries, err := os.ReadDir(targetDir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				addMatch(entry.Name())
			}
		}
	}
	for _, h := range queued {
		addMatch(h.TargetFileName)
	}
	return used
}
