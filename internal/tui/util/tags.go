package util

import (
	"strings"

	"codeplace/internal/tui/state"
)

// ComputeTags calculates the status chips for the current document from the
// mirrored UI state and the buffer text.
//
// The returned slice preserves a stable order:
//
//	Saving, Modified, New, Read Only, Lines, Chars
//
// Rules:
//   - Saving is shown while a save is in flight (chooser open for new files).
//   - Modified reflects unsaved edits; a new file is always New until saved.
//   - Read Only marks placeholder kinds (unsupported, welcome) that have no buffer.
//   - Lines and Chars are counters and only exist for documents with a buffer.
func ComputeTags(s state.UIState, content string) []state.Tag {
	if s.Kind == "" {
		return nil
	}
	tags := make([]state.Tag, 0, 6)
	if s.Saving {
		tags = append(tags, state.Tag{Kind: state.SAVING})
	}
	if s.Modified {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	switch s.Kind {
	case "new":
		tags = append(tags, state.Tag{Kind: state.NEW_FILE})
	case "unsupported", "welcome":
		return append(tags, state.Tag{Kind: state.READ_ONLY})
	}
	tags = append(tags,
		state.Tag{Kind: state.LINES, Value: lineCount(content)},
		state.Tag{Kind: state.CHARS, Value: runeLen(content)},
	)
	return tags
}

// lineCount counts lines the way an editor gutter does: an empty buffer has
// one line and a trailing newline opens another.
func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
