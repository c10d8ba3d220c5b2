package workspace

import "errors"

var (
	// ErrUnknownIdentity is returned when an operation names a document with no open screen.
	ErrUnknownIdentity = errors.New("unknown document")
	// ErrDuplicateIdentity is returned when a screen for the document is already open.
	ErrDuplicateIdentity = errors.New("document already open")
	// ErrPersistence wraps write failures while saving. The screen stays dirty.
	ErrPersistence = errors.New("save failed")
	// ErrLoad wraps read failures while loading content. The screen opens empty.
	ErrLoad = errors.New("load failed")
)
