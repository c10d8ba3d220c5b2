package workspace

import "codeplace/internal/document"

// Editor is the editing widget owned by a Code or NewFile screen.
type Editor interface {
	SetContent(text string)
	Content() string
	Focus(on bool)
	// OnEdit registers the callback fired on every user edit.
	// SetContent must not fire it.
	OnEdit(fn func())
}

// EditorFactory builds the editor widget for a new screen.
type EditorFactory func(id document.Identity, kind document.Kind) Editor

// LanguageDetector maps a filename to a highlighting-mode token.
type LanguageDetector interface {
	Detect(filename string) string
}

// BinarySniffer decides whether a file should open as Unsupported.
type BinarySniffer interface {
	IsBinary(path string) bool
}

// FileChooser asks the user for a destination path. done is called later,
// on the event loop, with ok=false on cancellation.
type FileChooser interface {
	ChooseSave(startDir string, done func(path string, ok bool))
}

// EmulationTarget receives the file selected for execution.
type EmulationTarget interface {
	SelectForEmulation(path string)
}
