package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeplace/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state. chips is the
// pre-rendered tag row for the current document.
func (StatusBar) View(s state.UIState, chips string) string {
	var parts []string
	if s.Label == "" {
		parts = append(parts, "No document")
	} else {
		parts = append(parts, s.Label)
	}
	if chips != "" {
		parts = append(parts, chips)
	}
	if s.Language != "" {
		parts = append(parts, s.Language)
	}
	parts = append(parts, fmt.Sprintf("Tabs:%d", s.Tabs))
	if s.RunTarget != "" {
		parts = append(parts, "Run:"+filepath.Base(s.RunTarget))
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
