// Package tabbar renders the row of document tabs and maps clicks back to tabs.
package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeplace/internal/tui/util"
)

// Tab is one entry of the bar.
type Tab struct {
	Label    string
	Selected bool
	Modified bool
}

// Span is the column range [Start, End) a tab occupies on screen.
type Span struct {
	Start int
	End   int
	Index int
}

const sep = " "

// View renders tabs on one line and returns where each one landed. Tabs that
// do not fit in width are dropped from the right, except that the selected
// tab is always shown.
func View(tabs []Tab, width int, noColor bool) (string, []Span) {
	if len(tabs) == 0 {
		return "", nil
	}
	noColor = util.NoColor(noColor)
	p := util.DefaultPalette()
	selected := lipgloss.NewStyle().Bold(true).Foreground(p.OnAccent).Background(p.Accent)
	normal := lipgloss.NewStyle().Foreground(p.Dim)

	var b strings.Builder
	var spans []Span
	col := 0
	for i, t := range tabs {
		cell := label(t, noColor)
		if !noColor {
			if t.Selected {
				cell = selected.Render(cell)
			} else {
				cell = normal.Render(cell)
			}
		}
		w := lipgloss.Width(cell)
		if width > 0 && col+w > width && !t.Selected {
			continue
		}
		if col > 0 {
			b.WriteString(sep)
			col += len(sep)
		}
		b.WriteString(cell)
		spans = append(spans, Span{Start: col, End: col + w, Index: i})
		col += w
	}
	return b.String(), spans
}

func label(t Tab, noColor bool) string {
	name := t.Label
	if t.Modified {
		name += " *"
	}
	if noColor && t.Selected {
		return "[" + name + "]"
	}
	return " " + name + " "
}

// Hit returns the index of the tab drawn at column x.
func Hit(spans []Span, x int) (int, bool) {
	for _, s := range spans {
		if x >= s.Start && x < s.End {
			return s.Index, true
		}
	}
	return 0, false
}
