package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"codeplace/internal/tui/state"
)

// Section is a titled group of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help. Disabled bindings are left out.
func (HelpOverlay) View(s state.UIState, sections []Section) string {
	var b strings.Builder
	title := "Help"
	if s.Label != "" {
		title = fmt.Sprintf("Help (%s)", s.Label)
	}
	b.WriteString(title + "\n")
	for _, sec := range sections {
		var lines []string
		for _, kb := range sec.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			lines = append(lines, fmt.Sprintf("  %s: %s", h.Key, h.Desc))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		b.WriteString(strings.Join(lines, "\n") + "\n")
	}
	b.WriteString("\nesc: close\n")
	return b.String()
}
