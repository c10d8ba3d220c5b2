package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeplace/internal/tui/state"
	"codeplace/internal/tui/util"
)

type chip struct {
	label string // fmt verb %d receives Tag.Value when present
	color func(util.Palette) lipgloss.Color
}

var chips = map[state.TagKind]chip{
	state.SAVING:    {"Saving", func(p util.Palette) lipgloss.Color { return p.Busy }},
	state.MODIFIED:  {"Modified", func(p util.Palette) lipgloss.Color { return p.Unsaved }},
	state.NEW_FILE:  {"New", func(p util.Palette) lipgloss.Color { return p.Accent }},
	state.READ_ONLY: {"Read Only", func(p util.Palette) lipgloss.Color { return p.Locked }},
	state.LINES:     {"Ln %d", func(p util.Palette) lipgloss.Color { return p.Dim }},
	state.CHARS:     {"Ch %d", func(p util.Palette) lipgloss.Color { return p.Dimmer }},
}

// View renders the status-bar chips for tags, in the order given. Without
// color each chip is a bracketed label.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)
	p := util.DefaultPalette()

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		c, ok := chips[t.Kind]
		if !ok {
			continue
		}
		label := c.label
		if strings.Contains(label, "%d") {
			label = fmt.Sprintf(label, t.Value)
		}
		if noColor {
			out = append(out, "["+label+"]")
			continue
		}
		out = append(out, p.Chip(c.color(p)).Render(label))
	}
	return strings.Join(out, " ")
}
