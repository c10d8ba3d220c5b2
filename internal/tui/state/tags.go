package state

// TagKind enumerates the status chips shown for the current document.
type TagKind int

const (
	// Stable ordering for display: Saving, Modified, New, Read Only, Lines, Chars
	SAVING TagKind = iota
	MODIFIED
	NEW_FILE
	READ_ONLY
	LINES
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and character counts). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
