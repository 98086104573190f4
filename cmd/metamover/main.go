// Command metamover scans a directory of photos and sorts them into a
// destination tree by EXIF date and camera model. See cmd.Execute for the
// flag surface.
package main

import (
	"fmt"
	"os"

	"github.com/user/metamover/cmd/metamover/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
