package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeplace/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View fits body into the editor region: the window minus the tab bar and
// status line. Short bodies are padded so the status line stays at the bottom.
func (Editor) View(s state.UIState, body string) string {
	height := Height(s)
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	out := strings.Join(lines, "\n")
	if s.Width > 0 {
		style := lipgloss.NewStyle().MaxWidth(s.Width)
		if s.TabWidth > 0 {
			style = style.TabWidth(s.TabWidth)
		}
		out = style.Render(out)
	}
	return out
}

// Chrome is the number of rows taken by the tab bar and status line.
const Chrome = 2

// Height is the number of rows left for the editor.
func Height(s state.UIState) int {
	h := s.Height - Chrome
	if s.Prompt != state.NoPrompt {
		h -= 2
	}
	if h < 1 && s.Height > 0 {
		return 1
	}
	return h
}

// Top is the first screen row of the editor region.
func Top() int { return 1 }
