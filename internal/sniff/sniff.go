// Package sniff decides whether a file can be shown in a text editor.
package sniff

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// readLimit is how much of a file is inspected.
const readLimit = 3072

// Sniffer classifies files by content type.
type Sniffer struct {
	fs afero.Fs
}

// New returns a Sniffer reading from fs.
func New(fs afero.Fs) *Sniffer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Sniffer{fs: fs}
}

// IsBinary reports whether path holds non-text content. Unreadable files and
// empty files are treated as text so the editor can report the problem.
func (s *Sniffer) IsBinary(path string) bool {
	f, err := s.fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, readLimit)
	n, _ := f.Read(head)
	if n == 0 {
		return false
	}
	return !IsText(head[:n])
}

// IsText reports whether data sniffs as text/plain or one of its descendants
// (source code, JSON, XML, ...).
func IsText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
