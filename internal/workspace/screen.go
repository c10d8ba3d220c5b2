package workspace

import (
	"fmt"

	"codeplace/internal/document"
)

// SaveState is the position of a screen in the save state machine.
type SaveState int

const (
	Clean SaveState = iota
	Dirty
	Saving
	UnsavedNew
)

func (s SaveState) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	case UnsavedNew:
		return "unsaved"
	default:
		return "unknown"
	}
}

// Screen pairs one document's editor with its dirty state. Screens are owned
// by the Registry; callers only read them.
type Screen struct {
	id       document.Identity
	kind     document.Kind
	editor   Editor
	tab      *TabControl
	dirty    bool
	saving   bool
	language string
	serial   int
}

func (s *Screen) ID() document.Identity { return s.id }
func (s *Screen) Kind() document.Kind   { return s.kind }
func (s *Screen) Dirty() bool           { return s.dirty }
func (s *Screen) Tab() *TabControl      { return s.tab }
func (s *Screen) Language() string      { return s.language }

// Editor is nil for Unsupported and Welcome screens.
func (s *Screen) Editor() Editor { return s.editor }

// Content is the editor text, empty for placeholders.
func (s *Screen) Content() string {
	if s.editor == nil {
		return ""
	}
	return s.editor.Content()
}

// State reports the save state machine position.
func (s *Screen) State() SaveState {
	switch {
	case s.saving:
		return Saving
	case s.kind == document.NewFile:
		return UnsavedNew
	case s.dirty:
		return Dirty
	default:
		return Clean
	}
}

// setDirty is the only writer of the dirty flag; it keeps the tab indicator in step.
func (s *Screen) setDirty(on bool) {
	s.dirty = on
	if s.tab != nil {
		s.tab.SetModified(on)
	}
}

func (s *Screen) edited() { s.setDirty(true) }

func (s *Screen) focus(on bool) {
	if s.editor != nil {
		s.editor.Focus(on)
	}
}

// scope is the shortcut scope name of the screen. It survives rekeying.
func (s *Screen) scope() string {
	return fmt.Sprintf("screen/%d", s.serial)
}
