// Package unsupported renders the placeholder shown for files that cannot be edited as text.
package unsupported

import (
	"fmt"
	"path/filepath"
)

// Render explains why path has no editor.
func Render(path string) string {
	return fmt.Sprintf("%s\n\nThis file is not text and cannot be edited here.\nClose the tab with the close key to dismiss it.\n", filepath.Base(path))
}
