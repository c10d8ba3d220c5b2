// Package welcome renders the start-up tab.
package welcome

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Render lists the shortcuts that get a user going.
func Render(bindings []key.Binding) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("codeplace") + "\n")
	b.WriteString("Open files from the command line, drop a path onto the editor, or use:\n\n")
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		h := kb.Help()
		fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
	}
	return b.String()
}
