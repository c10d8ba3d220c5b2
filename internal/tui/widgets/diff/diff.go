package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"codeplace/internal/tui/state"
	"codeplace/internal/tui/util"
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

type styles struct {
	delLine, addLine, delChar, addChar, faint lipgloss.Style
}

func newStyles(noColor bool) styles {
	if util.NoColor(noColor) {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	p := util.DefaultPalette()
	return styles{
		delLine: lipgloss.NewStyle().Foreground(p.Removed),
		addLine: lipgloss.NewStyle().Foreground(p.Added),
		delChar: lipgloss.NewStyle().Foreground(p.Removed).Underline(true),
		addChar: lipgloss.NewStyle().Foreground(p.Added).Underline(true),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

// View renders the on-disk text against the buffer. For SideBySide it aligns
// two columns with a vertical separator. For Unified it prefixes lines with
// +/- markers. Changed line pairs get character-level highlights.
func (DiffView) View(s state.UIState, disk, buffer string) string {
	st := newStyles(s.NoColor)
	if s.View == state.SideBySide {
		return sideBySide(disk, buffer, s, st)
	}
	return unified(disk, buffer, st)
}

func charDiffs(before, after string) []dmp.Diff {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	return d.DiffCleanupSemantic(diffs)
}

func unified(disk, buffer string, st styles) string {
	var b strings.Builder
	b.WriteString("DISK vs BUFFER (Unified)\n")
	if disk == buffer {
		b.WriteString("No changes\n")
		return b.String()
	}
	left := strings.Split(disk, "\n")
	right := strings.Split(buffer, "\n")
	if len(left) != len(right) {
		// line counts differ: show whole blocks
		for _, l := range left {
			b.WriteString(st.delLine.Render("- "+l) + "\n")
		}
		for _, l := range right {
			b.WriteString(st.addLine.Render("+ "+l) + "\n")
		}
		return b.String()
	}
	for i := range left {
		bl, al := left[i], right[i]
		if bl == al {
			if strings.TrimSpace(bl) == "" {
				continue
			}
			b.WriteString("  " + st.faint.Render(bl) + "\n")
			continue
		}
		diffs := charDiffs(bl, al)
		b.WriteString(st.delLine.Render("- "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				b.WriteString(st.delChar.Render(df.Text))
			case dmp.DiffEqual:
				b.WriteString(st.delLine.Render(df.Text))
			}
		}
		b.WriteString("\n")
		b.WriteString(st.addLine.Render("+ "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				b.WriteString(st.addChar.Render(df.Text))
			case dmp.DiffEqual:
				b.WriteString(st.addLine.Render(df.Text))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sideBySide(disk, buffer string, s state.UIState, st styles) string {
	const sep = " │ "
	var b strings.Builder
	b.WriteString("DISK │ BUFFER\n")
	left := strings.Split(disk, "\n")
	right := strings.Split(buffer, "\n")
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	// Compute column width from total width if provided
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - len(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	for i := 0; i < max; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		l, r = clip(l, colWidth), clip(r, colWidth)
		if l == r {
			fmt.Fprintf(&b, "%s%s%s\n", pad(st.faint.Render(l), colWidth), sep, st.faint.Render(r))
			continue
		}
		var lbuf, rbuf strings.Builder
		for _, df := range charDiffs(l, r) {
			switch df.Type {
			case dmp.DiffDelete:
				lbuf.WriteString(st.delChar.Render(df.Text))
			case dmp.DiffInsert:
				rbuf.WriteString(st.addChar.Render(df.Text))
			case dmp.DiffEqual:
				lbuf.WriteString(st.delLine.Render(df.Text))
				rbuf.WriteString(st.addLine.Render(df.Text))
			}
		}
		fmt.Fprintf(&b, "%s%s%s\n", pad(lbuf.String(), colWidth), sep, rbuf.String())
	}
	return b.String()
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
