// Package document defines how open documents are named and classified.
package document

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Identity is the key of an open screen: a filesystem path, a synthetic
// Untitled-<n> name for unsaved buffers, or WelcomeID.
type Identity string

// WelcomeID is the reserved identity of the welcome view.
const WelcomeID Identity = "codeplace-welcome"

const untitledPrefix = "Untitled-"

// Untitled returns the synthetic identity for the n-th unsaved buffer.
func Untitled(n int) Identity {
	return Identity(fmt.Sprintf("%s%d", untitledPrefix, n))
}

// IsUntitled reports whether id has the exact Untitled-<n> shape.
func (id Identity) IsUntitled() bool {
	rest, ok := strings.CutPrefix(string(id), untitledPrefix)
	if !ok || rest == "" {
		return false
	}
	n, err := strconv.Atoi(rest)
	return err == nil && n > 0 && strconv.Itoa(n) == rest
}

// FromPath normalises a user-supplied path into an identity.
func FromPath(path string) Identity {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return Identity(filepath.Clean(path))
}

// Path returns the identity as a filesystem path.
func (id Identity) Path() string { return string(id) }

// Dir is the directory a save dialog should start in for this identity.
// Synthetic identities have no directory.
func (id Identity) Dir() string {
	if id == WelcomeID || id.IsUntitled() {
		return ""
	}
	return filepath.Dir(string(id))
}

// Label is the tab caption for a screen of the given kind.
func Label(id Identity, kind Kind) string {
	if kind == Welcome {
		return "Welcome"
	}
	return filepath.Base(string(id))
}
